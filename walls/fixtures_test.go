package walls_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wallcut/gridgraph"
)

// golden is a room drawn with its expected walls: 'o' marks every tile
// the solver must propose, so rendering the solution reproduces rows.
type golden struct {
	name  string
	rows  []string
	walls int
}

// parse wraps rows as a terrain; 'o' reads as floor.
func parse(t testing.TB, rows []string) *gridgraph.ASCIITerrain {
	t.Helper()
	terrain, err := gridgraph.ParseTerrain(rows)
	require.NoError(t, err)
	return terrain
}

// goldens cover the default (exit buffer on) behaviour.
var goldens = []golden{
	{
		name: "Open7x7SingleCenter",
		rows: []string{
			".......",
			".......",
			"..ooo..",
			"..oCo..",
			"..ooo..",
			".......",
			".......",
		},
		walls: 8,
	},
	{
		name: "OnlyNearExits",
		rows: []string{
			"WWWWW..",
			"WWWWW..",
			"WW..o..",
			"WWoCoWW",
			"..o...W",
			"WWWWWWW",
			"WWWWWWW",
		},
		walls: 4,
	},
	{
		name: "Mixed9x9",
		rows: []string{
			"WW..WWWWW",
			"WW..WWWWW",
			"..Woo.W..",
			"..WCC.o..",
			"..oCC.o..",
			"WWWoWWW..",
			"WWWW..W..",
			"WWW....WW",
			"WWW....WW",
		},
		walls: 6,
	},
	{
		name: "NonRectangularCenter",
		rows: []string{
			".........",
			".........",
			"..WoW....",
			"..WCWo...",
			"..oCCWW..",
			"..WCCCW..",
			"..WWWoW..",
			".........",
			".........",
		},
		walls: 4,
	},
	{
		name: "DisconnectedCenters",
		rows: []string{
			"...........",
			"...........",
			"..oooo.....",
			"..oCCo.....",
			"..ooCo.....",
			"...o.o.....",
			"...o.oooo..",
			"...oCC.Co..",
			"...oooooo..",
			"...........",
			"...........",
		},
		walls: 24,
	},
	{
		name: "WallOnEdgeAllowsRingOne",
		rows: []string{
			"..WWWWW",
			"W..o..W",
			"Wooo..W",
			"W...C.W",
			"W..CCCW",
			"W...C.W",
			"WWWWWWW",
		},
		walls: 4,
	},
	{
		name: "MapSparseWalls",
		rows: []string{
			"WWWW.W........W....WWW....W...........WWWW........",
			"WWWW...............WWW.................WWW........",
			"WWWW....................W..WWWWWW......WWWWW......",
			"..............WWW..........WWWWWW...WWW..WWW..WWW.",
			"WW.......WWW..WWW.W........WWWWWW.WWWWW..WWW..WWW.",
			"WW.......WWWoWWWWWWW......W.WWW...WWWWW..WWW..WWW.",
			"WW.......WWW...WWWWWWW............WWWWWWW.....WWW.",
			".........W.....WWWWWWW.WWW............WWWWWWWWW...",
			"......WWWo.........WWWoWWW............WWWWWWWWW...",
			"......WWW.......W......WWW.............WWWWWWWW...",
			"...WWWWWW.......W........o.....WWW.....WWW........",
			"...WWW..............W....oooo..WWWWWWWW...........",
			"...WWWW.....CCCCCCCCCCCCCCCCWWWWWWWWWCo...WWW.....",
			"WW..WWW.....CCCCWWWWWWCWWWCWWWWCCCWWWCo.W.WWW.....",
			"WW..WWW.....CCCCCWWWWWCWWWWWWWWCCCCCCCoW..WWW...W.",
			"WW..W...WWWWWWWWWWWWWWWWWWWWWWCCCCCCCCo...........",
			"....o.W.WWWWWWWWWWWCWCWWWWWCCCCCCCCCCCo......W....",
			"...WWW..WWWWWWWWWWWCCCWWWWWWCCCCCCCCCWo...........",
			"WWWWWWW.....CCWCWWWCCCCCCWWWCCCCCWWWWWW...........",
			"WWWWWW....WWWCCWWWCCCCCCCWWWWWWCCWWWWWW...........",
			"WWW....W..WWWCWWWWCCCCCCWWWWWWWCCWWWWWW..W........",
			"..o.......WWWCCWWWCCCCCCWWWCWWWCCWWWWCoWWW.....WWW",
			"..o.........CCCCCCCCCCCCWWWCCCCCCCWCWWWWWWWWW.WWWW",
			".WWW........CCCCWCCCCCWWWCCCCCCCCCCCWWWWWWWWWW.WWW",
			".WWW....W...CCWCWCCCCCWWWCCCCCCCCCCCWWWWWWWWWW....",
			"WWWWWWW.....CCCWCCCCCWWWWCCCWWWCCCCCCWWW..WWWW....",
			"WW..WWW.....CCCCCCWWWCCCCCCCWWWCCCCWCWWW.WWW.WWW..",
			"WW..WWW.....CCCCCCWWWWCCCCCCWWWCCCCCCC...WWW.WWWW.",
			"...W.o......CCWCCCWWWWCCCCCCCCCCCCWCCC...WWW.WWWW.",
			"....Wo......CWCCCCCWWWCCWWWCCCCWCCCCCC........WWW.",
			".....o......CCCCCCCCCCCCWWWCWWWCCCCCCC....W.WWW...",
			"...W.o......CCCCCCCCCCCCWWWCWWWCCCCCCC...WW.WWWWW.",
			".....o.....WCCCCCCCCCCCCCCCCWWWCCCCCCC.....oWWWWW.",
			".....o......CCCCCCCCCWWWCCCWWWCCWWWWCC.....W..WWW.",
			".....o......CCCCCCCWWWWWCWWWWWCCWWWWCC.....o......",
			".....W......WCCCCCCCWWWWCWWWWWCCWWWWCC.....o......",
			".....Wo...WWWCCCWWWCCCCCCWWWCCCCCCCCCC.....o...W..",
			"WW..W.WWW.WWWCCCWWWWCCCWCCCCCCCCCCCCCC.....o......",
			"WW....WWW.WWWWWWWWWo.....W................oW......",
			"WW...WWWWWWWWWWW...o....................WWW.......",
			"WW...WWWWW..WWWW...WWWWW......WWW.......WWWW......",
			".....WWWWW..WWW....WWW.WWW...WWWW......oWWWW......",
			"...WW...W..........WWW.WWWoWoWWWWWWooWWW.WWW......",
			"........W....W.........WWW...WWWWWW..WWW..........",
			"...............WWW.....WWW......WWW..WWW..........",
			"......WWW......WWW...WWWWW.....W..................",
			"......WWW......WWW...WWW...W.......WWW............",
			"....WWWWW....WWW.....WWWW...W...W..WWW............",
			".............WWW......WWW..........WWW............",
			".............WWW......WWW.........................",
		},
		walls: 39,
	},
	{
		name: "MapWalledBorder",
		rows: []string{
			"WWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWW",
			"WWWWWWWWWWWWWWWWW..WWWWWW......WWWWWWWWWWWWWWWWWWW",
			"WWWWWW..............WWWW........WWWWWWWWWWW...WWWW",
			"WWWWWW..............WWW.........WWWWWWWWWW.....WWW",
			"WWWWWWW..............W..........WWWWWWWWWW........",
			"WWWWWWWW......................WWWWWWW...WWW.......",
			"WWWWW.WWW.......WWW..........WWWWWWW.....WWW......",
			"WWWW...WW......WWWWW..........WWWWW.......WWW.....",
			"WWWW....W......WWWWW.......................WWWW...",
			"..WWW...........WWWW....W...................WWWW..",
			"..WWW.....CCCCCCCWWWCCCCWCCCCCCCCCCCCCCC....WWWW..",
			"...WWW....CCCCCCCCWCCCCCCCCCCCCCCCCCCCCC...WWWWW..",
			"...WWWW...WWCCCCCCCCCCCCCCCCCCCCCCCCCCCC...WWWW...",
			"....WWWWWWWWWCCCCCCCCCCCCCCCCCCCCCCCCCCC....WW....",
			"....o.WWWWWWWWCCCCCCCCCCCCCCCCCCCCCCCCCC....o.....",
			"....o...WWWWWWCCCCCCCCWCCCWWWCCCCCCCCCCC....o.....",
			"....o....WWWWWWCCCCCCWWCCCWWWCCCCCCCCCCC....o.....",
			"...WW.....WWWWWCCCCCCCWCCCCWWWCCCCCCCCCC.WWWW.....",
			"..WWWW....CWWWCCCCCCCCCCCCCCWWWWWWWCCCCCWWWWW.....",
			"..WWWWW...CCCCCCCCCCCCCCCCCCCCWWWWWCCCCWWWWWW.....",
			"..WWWWW...CCCCCCCCWWCCCCCCCCCCCWWWCCCCCWWWWW......",
			"WWWWWW....CCCCCCCWWWWWWCCCCCCCCCWCCCCCWWWWWW......",
			"WWWWW.....CCCCCCCWWWWWWWCCCCCCCCCCCCCCWWWWW.......",
			"WWWW......CCCCCCCCWWWWWWCCCCCCCCCCCCCCCWWW........",
			"WWWW......CCCCCCCCCCCWWWWCCCCCCCCCCCCCCC.o........",
			"WWWW......CCCCCCCCCCCCWWWWWCCCCCCCCCCCCC.o........",
			"WWWWW.....CCCCCCCCCCCCCWWWWWCCCCCCCCCCCC.o.WW.....",
			"WWWWW.....CCCCCCCCCCCCCCWWWWCCCCCWWWCCCC.oWWWW....",
			"WWWWWW....CCCCCCCCCCCCCCCWWWWCCCCWWWCCCC.WWWW.....",
			"WWWWWW....CCCCCCCCCCCCCCCCWWWWCCCCWWCCCC.WWW......",
			"..WWWWW...CCCCCCCCCCCCCCCCWWWWWCCCCCCCCC.WWW......",
			"..WWWWW...CCCCCCCCCCCCCCCCWWWWWCCCCCCCCC..WWW.....",
			"..WWWW....CCCCCCCCWWCCCCCWWWWWWCCCCCCCCC..WWW.....",
			"..WWW.....CCCCWWWWWWWCCCCWWWWWWCCCCCCCCC..o.......",
			"..WWW.....CWWWWWWWWWWWCCCWWWWWCCCCCCCCCC..o.......",
			"..o.......CWWWWWWWWWWWCCCWWWWWCCCCCCCCCC..o.......",
			"..o.......CCWWWWCCCWWWCCCCWWWCCCCCCCCCCC..o.......",
			"..o.......CCCCCCCCCCCCCCCCCCCCCCCCCWWCCC..o.......",
			"WWo.......CCCCCCCCCCCCCCCCCCCCCCCCWWWWCC.WW.......",
			"WWW.......CCCCCCCCCCCCCCCCCCCCCCCCWWWWCC.WWWW.....",
			"WW........................ooooooooWWWWoooWWWWW....",
			"W........................WW........WW.....WWWW....",
			"W...........W...ooooooooWWW.......................",
			"W..........WWW..o........WW.......................",
			"W..........WWWW.o...............W.................",
			"W...........WWWWW..............WWW................",
			"W............WWWWW..............W.............WW..",
			"WW............WWWW.............................WWW",
			"WWWWW.........WWWWW.............................WW",
			"WWWWWWWWWWWWWWWWWWWWWW................WWWWW.....WW",
		},
		walls: 40,
	},
}

// legacyGoldens are drawn for rooms solved WithoutExitBuffer, where a
// tile next to an exit may itself be walled.
var legacyGoldens = []golden{
	{
		name: "Open5x5SingleCenter",
		rows: []string{
			".....",
			".ooo.",
			".oCo.",
			".ooo.",
			".....",
		},
		walls: 8,
	},
	{
		name: "OnlyNearExits",
		rows: []string{
			"WWWW.",
			"W..o.",
			"WoCoW",
			".o.o.",
			"WWWWW",
		},
		walls: 5,
	},
}

// bigMap is the 50×50 room used by benchmarks.
func bigMap() []string {
	for _, g := range goldens {
		if g.name == "MapWalledBorder" {
			return g.rows
		}
	}
	panic("walls: fixture missing")
}

// clean strips expected-wall markers so the room can be solved from scratch.
func clean(rows []string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = strings.ReplaceAll(r, "o", ".")
	}
	return out
}
