package usecases

import (
	"context"
	"fmt"
	"strconv"

	"aula/internal/domain/user"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
)

// LinkCustomerCommand carries a checkout.session.completed event. The
// client reference id is the platform user id stamped when the checkout
// session was created; the email is the fallback lookup key.
type LinkCustomerCommand struct {
	ProviderCustomerID string
	ClientReferenceID  string
	CustomerEmail      string
}

// LinkCustomerUseCase attaches the payment provider's customer id to the
// user record so later subscription and invoice events can find the owner.
type LinkCustomerUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

// NewLinkCustomerUseCase creates a new link customer use case.
func NewLinkCustomerUseCase(userRepo user.Repository, logger logger.Interface) *LinkCustomerUseCase {
	return &LinkCustomerUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute executes the link customer use case.
func (uc *LinkCustomerUseCase) Execute(ctx context.Context, cmd LinkCustomerCommand) error {
	if cmd.ProviderCustomerID == "" {
		return errors.NewValidationError("provider customer ID is required")
	}

	owner, err := uc.resolveUser(ctx, cmd)
	if err != nil {
		return err
	}

	if err := owner.LinkProviderCustomer(cmd.ProviderCustomerID); err != nil {
		uc.logger.Errorw("refusing to relink provider customer",
			"user_id", owner.ID(),
			"provider_customer_id", cmd.ProviderCustomerID,
			"error", err,
		)
		return errors.NewConflictError("user is linked to a different provider customer", err.Error())
	}

	if len(owner.Events()) == 0 {
		// Same customer id already linked; replayed delivery.
		return nil
	}

	if err := uc.userRepo.Update(ctx, owner); err != nil {
		return fmt.Errorf("failed to link provider customer: %w", err)
	}

	uc.logger.Infow("provider customer linked",
		"user_id", owner.ID(),
		"provider_customer_id", cmd.ProviderCustomerID,
	)
	return nil
}

func (uc *LinkCustomerUseCase) resolveUser(ctx context.Context, cmd LinkCustomerCommand) (*user.User, error) {
	if cmd.ClientReferenceID != "" {
		if id, err := strconv.ParseUint(cmd.ClientReferenceID, 10, 64); err == nil {
			u, err := uc.userRepo.GetByID(ctx, uint(id))
			if err != nil && !errors.IsNotFoundError(err) {
				return nil, fmt.Errorf("failed to load user: %w", err)
			}
			if u != nil {
				return u, nil
			}
		}
		uc.logger.Warnw("client reference id did not resolve, falling back to email",
			"client_reference_id", cmd.ClientReferenceID)
	}

	if cmd.CustomerEmail != "" {
		u, err := uc.userRepo.GetByEmail(ctx, cmd.CustomerEmail)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load user by email: %w", err)
		}
		if u != nil {
			return u, nil
		}
	}

	return nil, fmt.Errorf("no user for checkout session customer %s", cmd.ProviderCustomerID)
}
