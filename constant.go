// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package ccapi

import (
	"errors"
	"strings"
)

// Name is the product name. The local cache lives in ~/.ccapi.
const Name = "ccapi"

// AuthenticationHeader carries the session token on requests to Cell Collective.
const AuthenticationHeader = "X-AUTH-TOKEN"

// ErrAuthentication is returned when Cell Collective rejects the credentials.
var ErrAuthentication = errors.New("Unable to login into Cell Collective with credentials provided.")

// TypeInfo describes one entry of a type table.
type TypeInfo struct {
	Value string
}

// ModelType lists the model types the service understands.
var ModelType = map[string]TypeInfo{
	"BOOLEAN": {Value: "boolean"},
}

// ModelDomainType lists the model domains.
var ModelDomainType = map[string]TypeInfo{
	"RESEARCH": {Value: "research"},
}

// ModelExportType maps an export format to the identifier the service expects.
var ModelExportType = map[string]string{
	"sbml": "SBML",
}

// ModelTypeValue returns the wire value for a model type key such as "BOOLEAN".
func ModelTypeValue(key string) (string, bool) {
	t, ok := ModelType[key]
	return t.Value, ok
}

// ModelDomainTypeValue returns the wire value for a model domain key such as "RESEARCH".
func ModelDomainTypeValue(key string) (string, bool) {
	t, ok := ModelDomainType[key]
	return t.Value, ok
}

// ExportType returns the service identifier for an export format.
// The format is matched case-insensitively.
func ExportType(format string) (string, bool) {
	t, ok := ModelExportType[strings.ToLower(format)]
	return t, ok
}
