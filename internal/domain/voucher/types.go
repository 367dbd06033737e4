package voucher

import (
	"os"
	"strconv"
	"strings"

	"voucher-hub/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Type describes a creatable voucher preset: how long it lasts, whether it
// is single-use, and optional QoS limits. A zero limit means "no limit".
type Type struct {
	Key               string `yaml:"key" json:"key"`
	ExpirationMinutes int64  `yaml:"expiration" json:"expiration"`
	SingleUse         bool   `yaml:"single_use" json:"single_use"`
	UploadLimitKbps   int64  `yaml:"upload_limit" json:"upload_limit,omitempty"`
	DownloadLimitKbps int64  `yaml:"download_limit" json:"download_limit,omitempty"`
	DataLimitMB       int64  `yaml:"data_limit" json:"data_limit,omitempty"`
}

// Catalog is the set of voucher presets an operator may create from.
type Catalog struct {
	types []Type
	index map[string]Type
}

// ParseTypes parses the legacy semicolon-separated preset string
// "expiration,usage,upload,download,megabytes;...". Usage 1 marks a
// single-use preset. Trailing fields are optional per preset.
func ParseTypes(spec string) (*Catalog, error) {
	c := &Catalog{index: make(map[string]Type)}
	for _, raw := range strings.Split(spec, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		t, err := parseTypeKey(raw)
		if err != nil {
			return nil, err
		}
		c.add(t)
	}
	if len(c.types) == 0 {
		return nil, errs.New("voucher type catalog is empty")
	}
	return c, nil
}

// LoadTypesFile reads a YAML preset catalog, used in place of the legacy
// env string when configured.
func LoadTypesFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "read voucher type catalog")
	}
	var doc struct {
		Types []Type `yaml:"types"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errs.Wrap(err, "parse voucher type catalog")
	}
	c := &Catalog{index: make(map[string]Type)}
	for _, t := range doc.Types {
		if t.Key == "" {
			t.Key = typeKey(t)
		}
		if t.ExpirationMinutes <= 0 {
			return nil, errs.New("voucher type " + t.Key + ": expiration must be positive")
		}
		c.add(t)
	}
	if len(c.types) == 0 {
		return nil, errs.New("voucher type catalog is empty")
	}
	return c, nil
}

func (c *Catalog) add(t Type) {
	if _, ok := c.index[t.Key]; ok {
		return
	}
	c.index[t.Key] = t
	c.types = append(c.types, t)
}

// Types returns the presets in definition order.
func (c *Catalog) Types() []Type {
	out := make([]Type, len(c.types))
	copy(out, c.types)
	return out
}

// Lookup resolves a preset by its key.
func (c *Catalog) Lookup(key string) (Type, bool) {
	t, ok := c.index[key]
	return t, ok
}

// parseTypeKey turns one "expiration,usage[,up[,down[,megabytes]]]" segment
// into a Type keyed by the segment itself, mirroring how presets are
// referenced by clients.
func parseTypeKey(raw string) (Type, error) {
	fields := strings.Split(raw, ",")
	if len(fields) < 2 {
		return Type{}, errs.New("invalid voucher type " + strconv.Quote(raw))
	}
	t := Type{Key: raw}
	var err error
	if t.ExpirationMinutes, err = parseField(fields[0]); err != nil || t.ExpirationMinutes <= 0 {
		return Type{}, errs.New("invalid voucher type expiration " + strconv.Quote(fields[0]))
	}
	usage, err := parseField(fields[1])
	if err != nil {
		return Type{}, errs.New("invalid voucher type usage " + strconv.Quote(fields[1]))
	}
	t.SingleUse = usage == 1
	optional := []*int64{&t.UploadLimitKbps, &t.DownloadLimitKbps, &t.DataLimitMB}
	for i, dst := range optional {
		if len(fields) <= i+2 || strings.TrimSpace(fields[i+2]) == "" {
			continue
		}
		if *dst, err = parseField(fields[i+2]); err != nil {
			return Type{}, errs.New("invalid voucher type limit " + strconv.Quote(fields[i+2]))
		}
	}
	return t, nil
}

func parseField(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func typeKey(t Type) string {
	usage := "0"
	if t.SingleUse {
		usage = "1"
	}
	return strconv.FormatInt(t.ExpirationMinutes, 10) + "," + usage
}
