package teams

// The Guardian writes full club names while football-data and the frontend
// use short names, so searches expand a short name into these variants. The
// first entry is the preferred full name.
var variants = map[string][]string{
	"Man City":          {"Manchester City", "Man City"},
	"Man United":        {"Manchester United", "Man United", "Man Utd"},
	"Tottenham":         {"Tottenham Hotspur", "Tottenham", "Spurs"},
	"Spurs":             {"Tottenham Hotspur", "Spurs", "Tottenham"},
	"Newcastle":         {"Newcastle United", "Newcastle"},
	"West Ham":          {"West Ham United", "West Ham"},
	"Wolverhampton":     {"Wolverhampton Wanderers", "Wolves"},
	"Wolves":            {"Wolverhampton Wanderers", "Wolves"},
	"Brighton Hove":     {"Brighton & Hove Albion", "Brighton"},
	"Brighton":          {"Brighton & Hove Albion", "Brighton"},
	"Nottingham":        {"Nottingham Forest", "Forest"},
	"Nottingham Forest": {"Nottingham Forest", "Forest"},
	"Leicester City":    {"Leicester City", "Leicester"},
	"Ipswich Town":      {"Ipswich Town", "Ipswich"},
	"Aston Villa":       {"Aston Villa", "Villa"},
	"Crystal Palace":    {"Crystal Palace", "Palace"},
	"Bournemouth":       {"AFC Bournemouth", "Bournemouth"},
	"Leeds United":      {"Leeds United", "Leeds"},
	"Sheffield Utd":     {"Sheffield United", "Sheffield Utd"},
	"Luton Town":        {"Luton Town", "Luton"},
}

// VariantsFor returns the known spellings for a team, preferred first. An
// unknown team yields just its own name.
func VariantsFor(shortName string) []string {
	v, ok := variants[shortName]
	if !ok {
		return []string{shortName}
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

func PreferredName(shortName string) string {
	return VariantsFor(shortName)[0]
}
