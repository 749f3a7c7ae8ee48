package policies

import (
	"errors"

	"github.com/vikash-vatika/vatika-api/models"
)

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

type Resource string

const (
	ResourceCategory Resource = "category"
	ResourceProduct  Resource = "product"
	ResourceGallery  Resource = "gallery"
	ResourceOrder    Resource = "order"
)

var (
	ErrAuthentication = errors.New("authentication required")
	ErrAuthorization  = errors.New("permission denied")
)

// Authorize decides whether identity may perform action on a resource kind.
// A nil identity is an anonymous caller. ownerID is consulted only for order
// resources; pass zero for everything else.
//
// Catalog, product and gallery resources are world-readable and
// admin-writable. Orders always require an identity: any authenticated
// caller may create one, every other action is restricted to the order's
// owner or an admin.
func Authorize(identity *models.Identity, action Action, resource Resource, ownerID uint) error {
	if resource == ResourceOrder {
		if identity == nil {
			return ErrAuthentication
		}
		if action == ActionCreate {
			return nil
		}
		if identity.IsAdmin() || identity.UserID == ownerID {
			return nil
		}
		return ErrAuthorization
	}

	if action == ActionList || action == ActionRetrieve {
		return nil
	}
	if identity == nil {
		return ErrAuthentication
	}
	if identity.IsAdmin() {
		return nil
	}
	return ErrAuthorization
}
