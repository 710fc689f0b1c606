package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/melodia/internal/server/models"
)

// ErrorAmbiguousEmail is returned when more than one account shares an email.
// Emails are not unique at the schema level.
var ErrorAmbiguousEmail = errors.New("more than one user with this email")

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
