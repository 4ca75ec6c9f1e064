// Package token provides the character classes and source positions of
// bracket notation.
//
// [Closer] maps an opening bracket to the closer that ends its group,
// [IsQuote] and [Escape] describe quoted text, and [IsSeparator] reports
// token terminators.  [PosDoc] turns byte offsets into line and column
// numbers for error messages.
package token
