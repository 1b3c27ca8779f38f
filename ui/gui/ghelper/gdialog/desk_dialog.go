//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"
)

// SaveFile asks for a destination path and adds ext when the user left it out.
func SaveFile(title, filterDesc, ext string) (string, error) {
	path, err := dialog.File().Title(title).Filter(filterDesc, ext).Save()
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(filepath.Ext(path), "."+ext) {
		path += "." + ext
	}
	return path, nil
}

func IsCancelled(err error) bool {
	return errors.Is(err, dialog.ErrCancelled)
}
