package api

import (
	"encoding/json"
	"net/http"

	"github.com/mitchellh/mapstructure"

	"github.com/hrscout/hrscout/internal/query"
)

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// decodeFilters maps a loose JSON object onto a Filter. Weak typing
// lets JSON numbers land in the int fields.
func decodeFilters(raw map[string]any, dst *query.Filter) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           dst,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
