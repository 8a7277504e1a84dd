// Package service orchestrates box creation and retrieval and the two
// login flows, on top of the auth primitives and the box repository.
package service

import (
	"crypto/subtle"

	"boxdrop/internal/apierr"
	"boxdrop/internal/domain"
)

// Authorize decides whether a retrieval request may see box. Boxes
// without a password are open to anyone holding the code. The password
// comparison is constant time since it runs server side per request.
func Authorize(box *domain.Box, suppliedPassword string) error {
	if box.Password == "" {
		return nil
	}
	if suppliedPassword == "" {
		return apierr.PasswordRequired("[password] is required for this box")
	}
	if subtle.ConstantTimeCompare([]byte(box.Password), []byte(suppliedPassword)) != 1 {
		return apierr.InvalidPassword("Password does not match")
	}
	return nil
}
