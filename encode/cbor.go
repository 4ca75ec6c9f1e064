package encode

import (
	"github.com/signadot/bracket/ir"

	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding so equal trees always
// produce identical bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("encode: CBOR encoder initialization failed: " + err.Error())
	}
}

func encodeCBOR(b ir.Bracket) ([]byte, error) {
	return encMode.Marshal(ir.ToAny(b))
}
