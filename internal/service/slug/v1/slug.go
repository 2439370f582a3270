// Package slug provides functionality for converting link identifiers to short
// public strings and back.
package slug

import (
	"fmt"

	"github.com/speps/go-hashids/v2"

	serviceErrors "github.com/akarpov/linkcut/internal/service/errors"
	"github.com/akarpov/linkcut/internal/service/slug"
)

// Check interface implementation explicitly
var (
	_ slug.Codec = (*Codec)(nil)
)

// Codec struct defines data structure handling and provides support for adding new implementations.
type Codec struct {
	hashID *hashids.HashID
}

// InitCodec initializes a Codec object and sets its attributes.
func InitCodec(salt string, minLength int) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = minLength
	hashID, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, &serviceErrors.ServiceInitHashError{Msg: err.Error()}
	}
	return &Codec{hashID: hashID}, nil
}

// Encode converts a link identifier to its slug.
func (c *Codec) Encode(id int64) (string, error) {
	if id < 0 {
		return "", &serviceErrors.ServiceEncodingHashError{Msg: fmt.Sprintf("negative identifier %d", id)}
	}
	encoded, err := c.hashID.EncodeInt64([]int64{id})
	if err != nil {
		return "", &serviceErrors.ServiceEncodingHashError{Msg: err.Error()}
	}
	return encoded, nil
}

// Decode converts a slug back to its link identifier. Any input that Encode could
// not have produced yields an error, never a panic, so arbitrary external strings
// are safe to pass in.
func (c *Codec) Decode(encoded string) (int64, error) {
	if encoded == "" {
		return 0, &serviceErrors.ServiceDecodingHashError{Msg: "empty slug"}
	}
	ids, err := c.hashID.DecodeInt64WithError(encoded)
	if err != nil {
		return 0, &serviceErrors.ServiceDecodingHashError{Msg: err.Error()}
	}
	if len(ids) != 1 || ids[0] < 0 {
		return 0, &serviceErrors.ServiceDecodingHashError{Msg: fmt.Sprintf("unexpected payload in slug %q", encoded)}
	}
	// hashids admits decodings for strings it never produced, re-encoding and
	// comparing rejects those false positives
	reencoded, err := c.hashID.EncodeInt64([]int64{ids[0]})
	if err != nil || reencoded != encoded {
		return 0, &serviceErrors.ServiceDecodingHashError{Msg: fmt.Sprintf("slug %q fails round-trip check", encoded)}
	}
	return ids[0], nil
}
