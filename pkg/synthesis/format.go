package synthesis

import (
	"sort"

	"github.com/siftstack/sift/pkg/agent"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/plan"
)

// noDataInsight marks a perspective with nothing to say: a failed
// agent, or an ok agent that found no supporting records.
const noDataInsight = "no data"

// formatBullets produces one bullet per executed query agent, ordered
// by the canonical interrogative sequence. Failed agents still get a
// bullet so the reader sees which perspectives are missing. hasData
// reports whether at least one bullet carries a real insight.
func formatBullets(eplan *plan.ExecutionPlan, outcomes []agent.Outcome) (bullets []models.Bullet, hasData bool) {
	type ranked struct {
		bullet models.Bullet
		rank   int
		key    string
	}

	items := make([]ranked, 0, len(outcomes))
	for _, o := range outcomes {
		q := interrogativeOf(eplan, o.AgentKey)
		text := noDataInsight
		if o.Status == agent.StatusOK {
			if insight, ok := o.Output["insight"].(string); ok && insight != "" && insight != noDataInsight {
				text = insight
				hasData = true
			}
		}
		items = append(items, ranked{
			bullet: models.Bullet{
				Interrogative: q.Label(),
				Text:          q.Label() + ": " + text,
			},
			rank: q.Rank(),
			key:  o.AgentKey,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].rank != items[j].rank {
			return items[i].rank < items[j].rank
		}
		return items[i].key < items[j].key
	})

	bullets = make([]models.Bullet, 0, len(items))
	for _, item := range items {
		bullets = append(bullets, item.bullet)
	}
	return bullets, hasData
}

func interrogativeOf(eplan *plan.ExecutionPlan, agentKey string) config.Interrogative {
	if eplan != nil {
		if spec, ok := eplan.Spec(agentKey); ok && spec.Interrogative != "" {
			return spec.Interrogative
		}
	}
	return config.Interrogative(agentKey)
}

// buildVisualization collects spatial output into a map rendering
// spec. Agents contribute a "features" array of {label, lat, lon}
// objects; bounds come from an explicit "bounds" object or are derived
// from the feature set. Nil when no agent produced spatial data.
func buildVisualization(outcomes []agent.Outcome) *models.VisualizationSpec {
	ordered := make([]agent.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Status == agent.StatusOK {
			ordered = append(ordered, o)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].AgentKey < ordered[j].AgentKey })

	var features []models.GeoFeature
	var bounds *models.GeoBounds
	for _, o := range ordered {
		features = append(features, parseFeatures(o.Output["features"])...)
		if bounds == nil {
			bounds = parseBounds(o.Output["bounds"])
		}
	}
	if len(features) == 0 && bounds == nil {
		return nil
	}
	if bounds == nil {
		bounds = boundsOf(features)
	}
	return &models.VisualizationSpec{Bounds: bounds, Features: features}
}

func parseFeatures(value any) []models.GeoFeature {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	var features []models.GeoFeature
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		lat, latOK := obj["lat"].(float64)
		lon, lonOK := obj["lon"].(float64)
		if !latOK || !lonOK {
			continue
		}
		label, _ := obj["label"].(string)
		features = append(features, models.GeoFeature{Label: label, Lat: lat, Lon: lon})
	}
	return features
}

func parseBounds(value any) *models.GeoBounds {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	minLat, ok1 := obj["min_lat"].(float64)
	minLon, ok2 := obj["min_lon"].(float64)
	maxLat, ok3 := obj["max_lat"].(float64)
	maxLon, ok4 := obj["max_lon"].(float64)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil
	}
	return &models.GeoBounds{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: maxLon}
}

func boundsOf(features []models.GeoFeature) *models.GeoBounds {
	b := &models.GeoBounds{
		MinLat: features[0].Lat, MaxLat: features[0].Lat,
		MinLon: features[0].Lon, MaxLon: features[0].Lon,
	}
	for _, f := range features[1:] {
		b.MinLat = min(b.MinLat, f.Lat)
		b.MaxLat = max(b.MaxLat, f.Lat)
		b.MinLon = min(b.MinLon, f.Lon)
		b.MaxLon = max(b.MaxLon, f.Lon)
	}
	return b
}
