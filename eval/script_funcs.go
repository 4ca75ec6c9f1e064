package eval

import (
	"os"

	"github.com/signadot/bracket/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc ir.Bracket) []expr.Option {
	return []expr.Option{
		expr.Env(protoEnv),
		expr.Function("head", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			bs, err := doc.ListPath(nil, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(bs))
			for i, b := range bs {
				res[i] = ir.ToAny(b)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("truth", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.Truth(res), nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
