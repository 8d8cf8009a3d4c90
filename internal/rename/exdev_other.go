//go:build !unix

package rename

// Windows reports moves across volumes as ERROR_NOT_SAME_DEVICE, which
// os.Rename already surfaces with a readable message.
func isEXDEV(error) bool {
	return false
}
