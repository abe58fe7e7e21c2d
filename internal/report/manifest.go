package report

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"isoplan/internal/jsonutil"
	"isoplan/internal/output"
	"isoplan/internal/plan"
	"isoplan/internal/version"
	"isoplan/pkg/api"
)

// ManifestName is the manifest file written next to the plan.
const ManifestName = output.PlanBaseName + ".manifest.json"

// Digest returns the hex BLAKE2b-256 of a written plan file.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NewManifest describes planData, the exact bytes written to planFile.
func NewManifest(planFile, format string, list []plan.Record, planData []byte) api.ManifestV1 {
	c := plan.Summarize(list)
	return api.ManifestV1{
		PlanFile: planFile,
		Format:   format,
		Records:  c.Total,
		Ready:    c.Ready,
		Pending:  c.Pending,
		BLAKE2b:  Digest(planData),
		Tool:     "isoplan " + version.Version,
	}
}

func marshalManifest(m api.ManifestV1) ([]byte, error) {
	return jsonutil.MarshalPretty(m)
}
