package hufftree

// AppendEncoded appends the code for each byte of data to dst, in order,
// as ASCII '0' and '1' characters.
//
// If some byte of data has no code, AppendEncoded returns dst unchanged and
// a *MissingCodeError.  This only happens when data is not the input the
// table was built from.
//
func (ct *CodeTable) AppendEncoded(dst []byte, data []byte) ([]byte, error) {
	start := len(dst)
	for offset, b := range data {
		hc := ct.codes[b]
		if hc.Size == 0 {
			return dst[:start], &MissingCodeError{Symbol: Symbol(b), Offset: offset}
		}
		dst = hc.AppendText(dst)
	}
	return dst, nil
}

// Encode returns the encoded bit string for data.  On error, no partial
// output is returned.
func (ct *CodeTable) Encode(data []byte) ([]byte, error) {
	out, err := ct.AppendEncoded(make([]byte, 0, len(data)*int(ct.minSize)), data)
	if err != nil {
		return nil, err
	}
	return out, nil
}
