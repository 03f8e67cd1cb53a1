package inline

import (
	"encoding/json"

	"github.com/catchup-cli/catchup/source"
)

type Output struct {
	// URL is the URL that was extracted.
	URL string `json:"url"`
	// Extractor is the id of the source that handled the URL.
	Extractor string         `json:"extractor"`
	Result    *source.Result `json:"result"`
}

func asJson(result *source.Result, options *Options) ([]byte, error) {
	output := &Output{
		URL:    options.URL,
		Result: result,
	}
	if options.Source != nil {
		output.Extractor = options.Source.ID()
	}

	if options.Pretty {
		return json.MarshalIndent(output, "", "  ")
	}
	return json.Marshal(output)
}
