//go:build !windows

package console

import "os"

func setTitle(title string) error {
	return SetTitleTo(os.Stdout, title)
}
