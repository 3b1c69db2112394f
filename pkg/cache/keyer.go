package cache

// PartitionKeyOpts holds the options that change a partition.
type PartitionKeyOpts struct {
	Strategy string `json:"strategy"`
	Merge    string `json:"merge"`
}

// ArtifactKeyOpts holds the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Strategy string `json:"strategy"`
	Merge    string `json:"merge"`
}

// Keyer derives cache keys.
type Keyer interface {
	// PartitionKey keys the placements computed for a document.
	PartitionKey(docHash string, opts PartitionKeyOpts) string
	// ArtifactKey keys one rendered output of a document.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the document hash together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PartitionKey returns "partition:<sha256>".
func (DefaultKeyer) PartitionKey(docHash string, opts PartitionKeyOpts) string {
	return hashKey("partition", docHash, opts)
}

// ArtifactKey returns "artifact:<format>:<sha256>". The format stays
// readable so entries can be inspected per output type.
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, docHash, opts)
}
