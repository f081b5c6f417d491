package feedback

import (
	"math"
	"sort"
	"strings"
)

// visible reports whether scores from a relationship group may be shown.
// SELF and MANAGER are always shown; other groups need at least threshold
// responses so that no single reviewer can be singled out.
func visible(relationship string, count, threshold int) bool {
	if relationship == RelationSelf || relationship == RelationManager {
		return true
	}
	return count >= threshold
}

type tally struct {
	sum   int
	count int
}

func (t tally) average() *float64 {
	if t.count == 0 {
		return nil
	}
	v := math.Round(float64(t.sum)/float64(t.count)*100) / 100
	return &v
}

// buildReport aggregates the responses about one reviewee. Averages on the
// competency and overall level leave out SELF ratings and suppressed groups.
func buildReport(c Cycle, revieweeID string, responses []Response) ReportResponse {
	threshold := c.AnonymityThreshold
	if threshold <= 0 {
		threshold = DefaultAnonymityThreshold
	}

	perRelation := map[string]int{}
	for _, r := range responses {
		perRelation[r.Relationship]++
	}
	shown := map[string]bool{}
	for rel, n := range perRelation {
		shown[rel] = visible(rel, n, threshold)
	}

	competencies := c.CompetencyList()
	cells := make(map[string]map[string]*tally, len(competencies))
	for _, comp := range competencies {
		cells[comp] = map[string]*tally{}
		for _, rel := range Relationships {
			cells[comp][rel] = &tally{}
		}
	}

	var overall tally
	for _, r := range responses {
		if !shown[r.Relationship] {
			continue
		}
		for comp, score := range r.RatingMap() {
			byRel, ok := cells[comp]
			if !ok {
				continue
			}
			t, ok := byRel[r.Relationship]
			if !ok {
				continue
			}
			t.sum += score
			t.count++
			if r.Relationship != RelationSelf {
				overall.sum += score
				overall.count++
			}
		}
	}

	report := ReportResponse{
		CycleID:        c.ID.String(),
		RevieweeID:     revieweeID,
		RatingScale:    c.RatingScale,
		ResponseCount:  len(responses),
		OverallAverage: overall.average(),
		Competencies:   make([]CompetencyScore, 0, len(competencies)),
		Comments:       []ReportComment{},
	}

	for _, comp := range competencies {
		score := CompetencyScore{Competency: comp, ByRelationship: make([]RelationshipScore, 0, len(Relationships))}
		var others tally
		for _, rel := range Relationships {
			n := perRelation[rel]
			row := RelationshipScore{Relationship: rel, Count: n}
			if n > 0 && !shown[rel] {
				row.Suppressed = true
			} else {
				t := cells[comp][rel]
				row.Average = t.average()
				if rel != RelationSelf {
					others.sum += t.sum
					others.count += t.count
				}
			}
			score.ByRelationship = append(score.ByRelationship, row)
		}
		score.Average = others.average()
		report.Competencies = append(report.Competencies, score)
	}

	for _, r := range responses {
		text := strings.TrimSpace(r.Comment)
		if text == "" || !shown[r.Relationship] {
			continue
		}
		report.Comments = append(report.Comments, ReportComment{Relationship: r.Relationship, Comment: text})
	}
	// Stable order that does not follow submission time.
	order := map[string]int{}
	for i, rel := range Relationships {
		order[rel] = i
	}
	sort.SliceStable(report.Comments, func(i, j int) bool {
		a, b := report.Comments[i], report.Comments[j]
		if order[a.Relationship] != order[b.Relationship] {
			return order[a.Relationship] < order[b.Relationship]
		}
		return a.Comment < b.Comment
	})

	return report
}

func buildProgress(cycleID string, assignments []Assignment) ProgressResponse {
	rows := make(map[string]*ProgressRow, len(Relationships))
	for _, rel := range Relationships {
		rows[rel] = &ProgressRow{Relationship: rel}
	}

	res := ProgressResponse{CycleID: cycleID, ByRelationship: make([]ProgressRow, 0, len(Relationships))}
	for _, a := range assignments {
		row, ok := rows[a.Relationship]
		if !ok {
			continue
		}
		row.Assigned++
		res.Assigned++
		if a.Status == AssignmentSubmitted {
			row.Submitted++
			res.Submitted++
		}
	}
	for _, rel := range Relationships {
		res.ByRelationship = append(res.ByRelationship, *rows[rel])
	}
	if res.Assigned > 0 {
		res.CompletionRate = math.Round(float64(res.Submitted)/float64(res.Assigned)*10000) / 100
	}
	return res
}
