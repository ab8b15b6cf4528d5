//go:build !windows

package output

// enableANSI is a no-op outside Windows; Unix terminals interpret ANSI
// escapes natively.
func enableANSI() error {
	return nil
}
