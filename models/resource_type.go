package models

import (
	"errors"
	"fmt"
)

// ErrUnknownResourceType is returned by ResourceTypeByName for names that do
// not belong to the Tollgate resource model.
var ErrUnknownResourceType = errors.New("unknown resource type")

// ResourceType identifies a kind of REST resource exposed by the Tollgate API.
// It is used as the cache region name for resources of that kind.
type ResourceType int

const (
	ResourceTypeAccount ResourceType = iota + 1
	ResourceTypeAccountStoreMapping
	ResourceTypeAccessToken
	ResourceTypeAPIKey
	ResourceTypeApplication
	ResourceTypeCustomData
	ResourceTypeDirectory
	ResourceTypeGroup
	ResourceTypeGroupMembership
	ResourceTypeOrganization
	ResourceTypeRefreshToken
	ResourceTypeTenant
)

var resourceTypeNames = map[ResourceType]string{
	ResourceTypeAccount:             "Account",
	ResourceTypeAccountStoreMapping: "AccountStoreMapping",
	ResourceTypeAccessToken:         "AccessToken",
	ResourceTypeAPIKey:              "ApiKey",
	ResourceTypeApplication:         "Application",
	ResourceTypeCustomData:          "CustomData",
	ResourceTypeDirectory:           "Directory",
	ResourceTypeGroup:               "Group",
	ResourceTypeGroupMembership:     "GroupMembership",
	ResourceTypeOrganization:        "Organization",
	ResourceTypeRefreshToken:        "RefreshToken",
	ResourceTypeTenant:              "Tenant",
}

var resourceTypesByName = func() map[string]ResourceType {
	m := make(map[string]ResourceType, len(resourceTypeNames))
	for t, name := range resourceTypeNames {
		m[name] = t
	}
	return m
}()

// String returns the resource type name as it appears in configuration keys.
func (t ResourceType) String() string {
	if name, ok := resourceTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ResourceType(%d)", int(t))
}

// ResourceTypeByName resolves a configuration name such as "Account" into
// its ResourceType. Names are case-sensitive.
func ResourceTypeByName(name string) (ResourceType, error) {
	t, ok := resourceTypesByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownResourceType, name)
	}
	return t, nil
}

// ResourceTypes returns every known resource type in declaration order.
func ResourceTypes() []ResourceType {
	types := make([]ResourceType, 0, len(resourceTypeNames))
	for t := ResourceTypeAccount; t <= ResourceTypeTenant; t++ {
		types = append(types, t)
	}
	return types
}
