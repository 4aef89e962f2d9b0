package media

import "strings"

// Kind is the provenance of a stored image reference.
type Kind string

const (
	// KindEmpty means the owning record has no image.
	KindEmpty Kind = "empty"
	// KindExternal is a plain http(s) URL that this service does not manage.
	KindExternal Kind = "external"
	// KindManaged is a URL pointing into the configured storage bucket.
	KindManaged Kind = "managed"
	// KindLocal is a path to an asset bundled with the deployed frontend.
	KindLocal Kind = "local"
)

// OwnerKind names the entity type an image belongs to. It is part of the
// derived object key, so re-uploading for the same owner overwrites in place.
type OwnerKind string

const (
	OwnerHero        OwnerKind = "hero"
	OwnerAbout       OwnerKind = "about"
	OwnerCertificate OwnerKind = "certificate"
	OwnerProject     OwnerKind = "project"
)

func ParseOwnerKind(s string) (OwnerKind, bool) {
	switch OwnerKind(s) {
	case OwnerHero, OwnerAbout, OwnerCertificate, OwnerProject:
		return OwnerKind(s), true
	}
	return "", false
}

// Reference is a classified image reference. It is built once by a Classifier
// so handlers never re-sniff the raw string.
type Reference struct {
	Kind  Kind
	Value string
}

// Editable reports whether the crop/replace pipeline may act on the
// reference. Bundled local assets are read-only.
func (r Reference) Editable() bool {
	return r.Kind != KindLocal
}

// Classifier resolves raw reference strings against the configured bucket
// and local-asset prefix.
type Classifier struct {
	// ManagedPrefix is the public base URL of the storage bucket,
	// e.g. "https://storage.googleapis.com/my-bucket/".
	ManagedPrefix string
	// LocalPrefix is the bundled-asset path prefix, normally "/images/".
	LocalPrefix string
}

func (c Classifier) Classify(ref string) Reference {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return Reference{Kind: KindEmpty}
	case c.LocalPrefix != "" && strings.HasPrefix(ref, c.LocalPrefix):
		return Reference{Kind: KindLocal, Value: ref}
	case strings.HasPrefix(ref, "http") && c.ManagedPrefix != "" && strings.HasPrefix(ref, c.ManagedPrefix):
		return Reference{Kind: KindManaged, Value: ref}
	case strings.HasPrefix(ref, "http"):
		return Reference{Kind: KindExternal, Value: ref}
	default:
		// Unknown shapes are treated as external: never deleted from storage.
		return Reference{Kind: KindExternal, Value: ref}
	}
}

// ObjectKey returns the storage object key for a managed reference,
// or "" when the reference is not managed.
func (c Classifier) ObjectKey(r Reference) string {
	if r.Kind != KindManaged {
		return ""
	}
	return strings.TrimPrefix(r.Value, c.ManagedPrefix)
}
