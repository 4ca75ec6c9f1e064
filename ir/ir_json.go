package ir

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes b through ToAny.
func (b Bracket) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToAny(b))
}

func (b *Bracket) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	res, err := FromAny(v)
	if err != nil {
		return err
	}
	*b = res
	return nil
}

func ToJSON(b Bracket) ([]byte, error) {
	return json.Marshal(b)
}

func FromJSON(d []byte) (Bracket, error) {
	var res Bracket
	if err := json.Unmarshal(d, &res); err != nil {
		return Bracket{}, err
	}
	return res, nil
}
