package usecase

import (
	"github.com/riskibarqy/match-analytics/internal/domain/match"
	"github.com/riskibarqy/match-analytics/internal/infrastructure/repository/memory"
)

const (
	matchArsenalChelsea   = "13.08.11 Arsenal v Chelsea"
	matchChelseaLiverpool = "20.08.11 Chelsea v Liverpool"
	matchLiverpoolArsenal = "27.08.11 Liverpool v Arsenal"
	matchOpenDay          = "Arsenal Open Day"
)

// seasonRepository holds three dated league matches, one a week apart, plus
// one match whose ID carries no teams.
//
//	13.08 Arsenal 2-1 Chelsea
//	20.08 Chelsea 0-1 Liverpool
//	27.08 Liverpool 0-0 Arsenal
func seasonRepository() *memory.MatchRepository {
	return memory.NewMatchRepository(map[string]memory.MatchData{
		matchArsenalChelsea: {
			Events: []match.Event{
				{Name: "Pass", Half: match.HalfFirst, Time: 10, Player: "Arteta", Team: "Arsenal", X: -10, Y: 0},
				{Name: match.EventGoal, Half: match.HalfFirst, Time: 600, Player: "RVP", Team: "Arsenal", X: 45, Y: 2},
				{Name: "Shot", Half: match.HalfFirst, Time: 700, Player: "Lampard", Team: "Chelsea", X: -30, Y: 5},
				{Name: match.EventGoal, Half: match.HalfSecond, Time: 100, Player: "Lampard", Team: "Chelsea", X: -40, Y: 1},
				{Name: match.EventGoal, Half: match.HalfSecond, Time: 300, Player: "RVP", Team: "Arsenal", X: 48, Y: -3},
			},
			Players: []match.PlayerRecord{
				{Name: "RVP", Team: "Arsenal", Result: match.ResultWin, Goals: 2, XG: 1.2, Minutes: 90, Counters: match.Counters{Shot: 4, Pass: 20}},
				{Name: "Arteta", Team: "Arsenal", Result: match.ResultWin, Minutes: 90, Counters: match.Counters{Pass: 60, Interception: 3}},
				{Name: "Lampard", Team: "Chelsea", Result: match.ResultLoss, Goals: 1, XG: 0.5, Minutes: 90},
				{Name: "Cech", Team: "Chelsea", Result: match.ResultLoss, Minutes: 90, Goalkeeping: match.GoalkeeperActions{Save: 3}},
			},
		},
		matchChelseaLiverpool: {
			Events: []match.Event{
				{Name: "Pass", Half: match.HalfFirst, Time: 30, Player: "Lampard", Team: "Chelsea"},
				{Name: match.EventGoal, Half: match.HalfFirst, Time: 200, Player: "Suarez", Team: "Liverpool"},
			},
			Players: []match.PlayerRecord{
				{Name: "Lampard", Team: "Chelsea", Result: match.ResultLoss, Minutes: 90},
				{Name: "Cech", Team: "Chelsea", Result: match.ResultLoss, Minutes: 90, Goalkeeping: match.GoalkeeperActions{Save: 2}},
				{Name: "Suarez", Team: "Liverpool", Result: match.ResultWin, Goals: 1, XG: 0.7, Minutes: 90},
			},
		},
		matchLiverpoolArsenal: {
			Events: []match.Event{
				{Name: "Pass", Half: match.HalfFirst, Time: 15, Player: "Suarez", Team: "Liverpool"},
				{Name: "Shot", Half: match.HalfSecond, Time: 40, Player: "RVP", Team: "Arsenal", X: 40, Y: 0},
			},
			Players: []match.PlayerRecord{
				{Name: "RVP", Team: "Arsenal", Result: match.ResultDraw, XG: 0.3, Minutes: 90, YellowCards: 1, Counters: match.Counters{Shot: 1}},
				{Name: "Suarez", Team: "Liverpool", Result: match.ResultDraw, Minutes: 90},
			},
		},
		matchOpenDay: {
			Events: []match.Event{
				{Name: "Shot", Half: match.HalfFirst, Time: 50, Player: "RVP", Team: "Arsenal", X: 20, Y: 10},
			},
			Players: []match.PlayerRecord{
				{Name: "RVP", Team: "Arsenal", Result: match.ResultWin, Goals: 1, Minutes: 30},
			},
		},
	}, map[string][]byte{
		"Arsenal": {0xff, 0xd8, 0xff},
	})
}
