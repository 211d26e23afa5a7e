//go:build !unix

package version

import "errors"

func kernelRelease() (string, error) { return "", errors.ErrUnsupported }
