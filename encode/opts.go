package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeIndent sets the indentation unit of EncodeData. The default is a
// tab.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// EncodeSeparator sets the text between a key and a scalar value in
// EncodeData. The default is a tab.
func EncodeSeparator(s string) EncodeOption {
	return func(es *EncState) { es.sep = s }
}
