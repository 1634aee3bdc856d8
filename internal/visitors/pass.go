package visitors

import "keggblast/pkg/api"

// PassThrough returns the hit unchanged.
type PassThrough struct{}

func (PassThrough) Visit(h api.HitV1) (keep bool, out api.HitV1, err error) {
	return true, h, nil
}
