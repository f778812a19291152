package liberror

// If returns err when cond is true and nil otherwise, so guard checks
// collapse to a single return:
//
//	return liberror.If(off > size, newParseError(errBadOffset, "reading header"))
func If(cond bool, err error) error {
	if cond {
		return err
	}

	return nil
}
