package encode

type EncodeOption func(*EncState)

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeDiagnostics appends node diagnostics as trailing comments.
func EncodeDiagnostics(v bool) EncodeOption {
	return func(es *EncState) { es.diagnostics = v }
}
