package usecase

import "strings"

// Attribution extraction from the open set of checkout request fields.
//
// Campaign builders encode "Name|id" into the UTM values; splitting on the
// pipe recovers both halves. A value without the delimiter degrades to
// (raw value, "") so hand-typed campaigns still attribute by name.

const attributionDelimiter = "|"

// attributionAllowList names the non-utm_ fields retained verbatim.
var attributionAllowList = map[string]bool{
	"fbclid": true,
	"gclid":  true,
	"src":    true,
	"sck":    true,
}

// ExtractAttribution derives the attribution mapping merged into the lead
// payload and the conversion custom data. Fields prefixed utm_ and the
// allow-listed click ids are kept verbatim; utm_campaign, utm_medium and
// utm_content are additionally split into (name, id) pairs.
func ExtractAttribution(fields map[string]string) map[string]string {
	out := make(map[string]string)
	for key, value := range fields {
		if strings.HasPrefix(key, "utm_") || attributionAllowList[key] {
			out[key] = value
		}
	}

	if v, ok := out["utm_campaign"]; ok {
		out["campaign_name"], out["campaign_id"] = splitNameID(v)
	}
	if v, ok := out["utm_medium"]; ok {
		out["adset_name"], out["adset_id"] = splitNameID(v)
	}
	if v, ok := out["utm_content"]; ok {
		out["ad_name"], out["ad_id"] = splitNameID(v)
	}
	if v, ok := out["utm_term"]; ok {
		out["placement"] = v
	}
	return out
}

func splitNameID(value string) (name, id string) {
	if idx := strings.Index(value, attributionDelimiter); idx >= 0 {
		return value[:idx], value[idx+len(attributionDelimiter):]
	}
	return value, ""
}
