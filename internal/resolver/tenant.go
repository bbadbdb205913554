package resolver

import "context"

// StaticTenantResolver always names the same tenant.
type StaticTenantResolver struct {
	tenant string
}

// NewStaticTenantResolver wraps tenant, typically a tenant href.
func NewStaticTenantResolver(tenant string) *StaticTenantResolver {
	return &StaticTenantResolver{tenant: tenant}
}

// CurrentTenant implements [TenantResolver].
func (r *StaticTenantResolver) CurrentTenant(context.Context) (string, error) {
	return r.tenant, nil
}
