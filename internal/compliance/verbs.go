package compliance

import "strings"

// actionVerbs is the closed list of recognized leading action verbs. Matching
// is against the lower-cased first token of a bullet with trailing
// punctuation stripped.
var actionVerbs = []string{
	"accelerated", "accomplished", "achieved", "acquired", "adapted",
	"administered", "advanced", "advised", "advocated", "aligned",
	"analyzed", "anticipated", "applied", "appointed", "appraised",
	"approved", "arbitrated", "architected", "arranged", "assembled",
	"assessed", "assigned", "assisted", "attained", "audited",
	"augmented", "authored", "automated", "balanced", "benchmarked",
	"boosted", "brainstormed", "budgeted", "built", "calculated",
	"campaigned", "captured", "catalogued", "centralized", "chaired",
	"championed", "clarified", "classified", "coached", "coded",
	"collaborated", "collected", "communicated", "compiled", "completed",
	"composed", "computed", "conceived", "conceptualized", "condensed",
	"conducted", "configured", "consolidated", "constructed", "consulted",
	"contracted", "contributed", "converted", "coordinated", "corrected",
	"counseled", "crafted", "created", "cultivated", "customized",
	"debugged", "decreased", "defined", "delegated", "delivered",
	"demonstrated", "deployed", "designed", "detected", "determined",
	"developed", "devised", "diagnosed", "directed", "discovered",
	"dispatched", "distributed", "documented", "doubled", "drafted",
	"drove", "earned", "edited", "educated", "eliminated",
	"enabled", "encouraged", "enforced", "engineered", "enhanced",
	"enriched", "ensured", "established", "estimated", "evaluated",
	"examined", "exceeded", "executed", "expanded", "expedited",
	"experimented", "explained", "explored", "expressed", "extended",
	"extracted", "facilitated", "finalized", "financed", "fixed",
	"forecasted", "forged", "formalized", "formed", "formulated",
	"fostered", "founded", "fulfilled", "generated", "governed",
	"grew", "guided", "halved", "handled", "headed",
	"hired", "hosted", "identified", "illustrated", "imagined",
	"implemented", "improved", "improvised", "incorporated", "increased",
	"influenced", "informed", "initiated", "innovated", "inspected",
	"inspired", "installed", "instituted", "instructed", "integrated",
	"interpreted", "interviewed", "introduced", "invented", "investigated",
	"judged", "launched", "led", "leveraged", "licensed",
	"lowered", "maintained", "managed", "mapped", "marketed",
	"mastered", "maximized", "measured", "mediated", "mentored",
	"merged", "migrated", "minimized", "mobilized", "modeled",
	"moderated", "modernized", "modified", "monitored", "motivated",
	"navigated", "negotiated", "observed", "obtained", "offloaded",
	"onboarded", "opened", "operated", "optimized", "orchestrated",
	"ordered", "organized", "originated", "outlined", "outpaced",
	"overhauled", "oversaw", "owned", "parallelized", "partnered",
	"performed", "persuaded", "piloted", "pinpointed", "pioneered",
	"planned", "predicted", "prepared", "presented", "prevented",
	"prioritized", "processed", "procured", "produced", "profiled",
	"programmed", "projected", "promoted", "proposed", "prototyped",
	"proved", "provided", "published", "purchased", "pursued",
	"quadrupled", "qualified", "quantified", "raised", "ran",
	"rated", "rearchitected", "rebuilt", "recommended", "reconciled",
	"recorded", "recruited", "redesigned", "reduced", "reengineered",
	"refactored", "refined", "reinforced", "released", "remediated",
	"renovated", "reorganized", "repaired", "replaced", "reported",
	"researched", "resolved", "restored", "restructured", "revamped",
	"reversed", "reviewed", "revised", "revitalized", "saved",
	"scaled", "scheduled", "screened", "scripted", "secured",
	"selected", "served", "serviced", "shaped", "shipped",
	"simplified", "simulated", "solved", "sourced", "spearheaded",
	"specified", "sponsored", "stabilized", "staffed", "standardized",
	"steered", "streamlined", "strengthened", "structured", "studied",
	"summarized", "supervised", "supplied", "supported", "surpassed",
	"surveyed", "sustained", "synthesized", "systematized", "targeted",
	"taught", "tested", "trained", "transformed", "translated",
	"tripled", "troubleshot", "tuned", "tutored", "unified",
	"upgraded", "validated", "verified", "visualized", "won",
	"wrote",
}

var actionVerbSet = func() map[string]bool {
	set := make(map[string]bool, len(actionVerbs))
	for _, verb := range actionVerbs {
		set[verb] = true
	}
	return set
}()

// startsWithActionVerb reports whether the bullet's first token, lower-cased
// and stripped of trailing punctuation, is a recognized action verb.
func startsWithActionVerb(bullet string) bool {
	fields := strings.Fields(strings.ToLower(bullet))
	if len(fields) == 0 {
		return false
	}
	first := strings.TrimRight(fields[0], ".,!?;:")
	return actionVerbSet[first]
}
