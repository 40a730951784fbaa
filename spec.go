package transitworld

import (
	"encoding/json"
	"fmt"
)

// Spec identifies the data specification a feed is published in.
type Spec string

const (
	// SpecGTFS is the General Transit Feed Specification, static schedule data.
	SpecGTFS Spec = "gtfs"
	// SpecGTFSRealtime is GTFS Realtime: vehicle positions, trip updates, alerts.
	SpecGTFSRealtime Spec = "gtfs-rt"
	// SpecGBFS is the General Bikeshare Feed Specification.
	SpecGBFS Spec = "gbfs"
	// SpecMDS is the Mobility Data Specification.
	SpecMDS Spec = "mds"
)

func (s Spec) String() string { return string(s) }

// UnmarshalJSON rejects values outside the closed set of known specs.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch spec := Spec(v); spec {
	case SpecGTFS, SpecGTFSRealtime, SpecGBFS, SpecMDS:
		*s = spec
		return nil
	}
	return fmt.Errorf("unknown feed spec %q", v)
}

// AuthorizationType is the mechanism for attaching a secret to requests for
// a protected feed.
type AuthorizationType string

const (
	AuthNone        AuthorizationType = ""
	AuthHeader      AuthorizationType = "header"
	AuthBasicAuth   AuthorizationType = "basic_auth"
	AuthQueryParam  AuthorizationType = "query_param"
	AuthPathSegment AuthorizationType = "path_segment"
)

// UnmarshalJSON rejects values outside the closed set of authorization types.
func (a *AuthorizationType) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch at := AuthorizationType(v); at {
	case AuthNone, AuthHeader, AuthBasicAuth, AuthQueryParam, AuthPathSegment:
		*a = at
		return nil
	}
	return fmt.Errorf("unknown authorization type %q", v)
}
