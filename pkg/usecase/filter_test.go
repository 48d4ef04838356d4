package usecase_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/usecase"
)

func TestParseCutoff(t *testing.T) {
	t.Run("date is midnight UTC", func(t *testing.T) {
		cutoff := gt.R1(usecase.ParseCutoff("2025-07-01")).NoError(t)
		gt.True(t, cutoff.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))
		gt.V(t, cutoff.Location()).Equal(time.UTC)
	})

	t.Run("surrounding spaces are ignored", func(t *testing.T) {
		cutoff := gt.R1(usecase.ParseCutoff(" 2024-12-31 ")).NoError(t)
		gt.True(t, cutoff.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	})

	for _, s := range []string{"", "2025/07/01", "2025-13-01", "01-07-2025", "yesterday"} {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := usecase.ParseCutoff(s)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		})
	}
}

func TestFilterByActivity(t *testing.T) {
	cutoff := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	at := func(s string) *time.Time {
		v := gt.R1(time.Parse(time.RFC3339, s)).NoError(t)
		return &v
	}

	a := newProject(1, "a")
	b := newProject(2, "b")
	c := newProject(3, "c")
	d := newProject(4, "d")
	e := newProject(5, "e")

	infos := model.CommitInfoMap{
		1: {ProjectID: 1, LastCommitAt: at("2025-08-01T00:00:00Z")},
		2: {ProjectID: 2, LastCommitAt: at("2025-01-01T00:00:00Z")},
		3: {ProjectID: 3, Error: "connection refused"},
		4: {ProjectID: 4, LastCommitAt: at("2025-07-01T00:00:00Z")},
		// 5 has no lookup result at all
	}

	got := usecase.FilterByActivity([]*model.Project{a, b, c, d, e}, infos, cutoff)
	gt.A(t, got).Length(2)
	gt.V(t, got[0]).Equal(a)
	gt.V(t, got[1]).Equal(d)

	t.Run("error wins over timestamp", func(t *testing.T) {
		infos := model.CommitInfoMap{
			1: {ProjectID: 1, LastCommitAt: at("2025-08-01T00:00:00Z"), Error: "partial"},
		}
		gt.A(t, usecase.FilterByActivity([]*model.Project{a}, infos, cutoff)).Length(0)
	})

	t.Run("empty input", func(t *testing.T) {
		gt.A(t, usecase.FilterByActivity(nil, infos, cutoff)).Length(0)
	})
}

func TestFilterByActivityProperty(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for round := 0; round < 50; round++ {
		cutoff := base.Add(time.Duration(rnd.Intn(365*24)) * time.Hour)

		var projects []*model.Project
		infos := model.CommitInfoMap{}
		n := rnd.Intn(30)
		for i := 0; i < n; i++ {
			p := newProject(int64(i+1), "p")
			projects = append(projects, p)

			switch rnd.Intn(3) {
			case 0:
				ts := base.Add(time.Duration(rnd.Intn(365*24)) * time.Hour)
				infos[p.ID] = &model.CommitInfo{ProjectID: p.ID, LastCommitAt: &ts}
			case 1:
				infos[p.ID] = &model.CommitInfo{ProjectID: p.ID, Error: "lookup failed"}
			default:
				infos[p.ID] = &model.CommitInfo{ProjectID: p.ID}
			}
		}

		var want []*model.Project
		for _, p := range projects {
			info := infos[p.ID]
			if info.Error == "" && info.LastCommitAt != nil && !info.LastCommitAt.Before(cutoff) {
				want = append(want, p)
			}
		}

		got := usecase.FilterByActivity(projects, infos, cutoff)
		gt.V(t, got).Equal(want)
	}
}
