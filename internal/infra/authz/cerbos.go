package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/cerbos/cerbos-sdk-go/cerbos"
	"go.uber.org/zap"

	"github.com/arklim/social-platform-blog/internal/core/port"
	"github.com/arklim/social-platform-blog/internal/infra/config"
)

// ErrUnavailable indicates the policy decision point could not be reached or
// returned a protocol-level failure. Callers must propagate it instead of
// defaulting the decision to allow or deny.
var ErrUnavailable = errors.New("authorization service unavailable")

const (
	resourceKind  = "blog"
	policyVersion = "default"
	principalID   = "default"
	resourceID    = "default"
)

// CerbosAuthorizer implements port.Authorizer against a Cerbos PDP.
type CerbosAuthorizer struct {
	client *cerbos.GRPCClient
	logger *zap.Logger
}

// NewCerbosAuthorizer dials the configured Cerbos instance.
func NewCerbosAuthorizer(cfg config.CerbosSettings, log *zap.Logger) (*CerbosAuthorizer, error) {
	opts := []cerbos.Opt{}
	if !cfg.TLSEnabled {
		opts = append(opts, cerbos.WithPlaintext())
	}

	client, err := cerbos.New(cfg.Address(), opts...)
	if err != nil {
		return nil, fmt.Errorf("create cerbos client: %w", err)
	}

	log.Info("cerbos client initialized", zap.String("address", cfg.Address()))

	return &CerbosAuthorizer{client: client, logger: log}, nil
}

// IsAllowed checks permission based solely on the caller's roles. The
// resource is identified only by its kind; no instance attributes are sent.
func (a *CerbosAuthorizer) IsAllowed(ctx context.Context, action string, roles []string) (bool, error) {
	principal := cerbos.NewPrincipal(principalID, roles...)
	resource := cerbos.NewResource(resourceKind, resourceID).WithPolicyVersion(policyVersion)

	allowed, err := a.client.IsAllowed(ctx, principal, resource, action)
	if err != nil {
		a.logger.Error("permission check failed",
			zap.String("action", action),
			zap.Strings("roles", roles),
			zap.Error(err),
		)
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	a.logger.Info("permission check completed",
		zap.String("action", action),
		zap.Strings("roles", roles),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

var _ port.Authorizer = (*CerbosAuthorizer)(nil)
