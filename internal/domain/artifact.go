package domain

// ArtifactKind identifies one of the emit targets.
type ArtifactKind string

const (
	ArtifactHostScript   ArtifactKind = "host-script"
	ArtifactComponent    ArtifactKind = "component"
	ArtifactCmsShortcode ArtifactKind = "cms-shortcode"
)

// ArtifactKinds lists every emit target in display order.
var ArtifactKinds = []ArtifactKind{ArtifactHostScript, ArtifactComponent, ArtifactCmsShortcode}

// IsValid checks if the kind is a known emit target.
func (k ArtifactKind) IsValid() bool {
	switch k {
	case ArtifactHostScript, ArtifactComponent, ArtifactCmsShortcode:
		return true
	default:
		return false
	}
}

// GeneratedArtifact is derived source text for one emit target.
// Artifacts are recomputed on every change and never stored.
type GeneratedArtifact struct {
	Kind       ArtifactKind
	SourceText string
}

// IsEmpty returns true if nothing was emitted.
func (a GeneratedArtifact) IsEmpty() bool {
	return a.SourceText == ""
}
