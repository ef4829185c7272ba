package auth

import (
	"fmt"

	"github.com/cariesreview/catalog/internal/app/models"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
	"github.com/cariesreview/catalog/internal/pkg/logger"
)

// Permission is an action on the editing API.
type Permission string

const (
	PermEditCatalog   Permission = "catalog:edit"
	PermVerifyStudies Permission = "studies:verify"
)

// rolePermissions lists what each editor role may do. Only verifiers sign
// off on studies.
var rolePermissions = map[models.EditorRole][]Permission{
	models.RoleExtractor: {PermEditCatalog},
	models.RoleVerifier:  {PermEditCatalog, PermVerifyStudies},
}

// Can reports whether role grants perm.
func Can(role models.EditorRole, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// Authorize returns a forbidden error unless editor's role grants perm.
func Authorize(editor models.Editor, perm Permission) error {
	if Can(editor.Role, perm) {
		return nil
	}
	logger.Warn().
		Str("editor", editor.Username).
		Str("role", string(editor.Role)).
		Str("permission", string(perm)).
		Msg("Permission denied")
	return apperrors.NewForbiddenError(fmt.Sprintf("role %q may not %s", editor.Role, describe(perm)))
}

func describe(perm Permission) string {
	switch perm {
	case PermEditCatalog:
		return "edit the catalog"
	case PermVerifyStudies:
		return "verify studies"
	default:
		return string(perm)
	}
}
