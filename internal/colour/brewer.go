package colour

import (
	"slices"
	"sort"
	"strings"
	"sync"
)

// brewerData holds the bundled ColorBrewer anchor tables, keyed by their
// published names. Sequential families run dark to light; diverging families
// run end to end through their neutral midpoint.
var brewerData = map[string][]string{
	// Sequential, multi-hue.
	"BuGn":   {"#00441B", "#006D2C", "#238B45", "#41AE76", "#66C2A4", "#99D8C9", "#CCECE6", "#E5F5F9", "#F7FCFD"},
	"BuPu":   {"#4D004B", "#810F7C", "#88419D", "#8C6BB1", "#8C96C6", "#9EBCDA", "#BFD3E6", "#E0ECF4", "#F7FCFD"},
	"GnBu":   {"#084081", "#0868AC", "#2B8CBE", "#4EB3D3", "#7BCCC4", "#A8DDB5", "#CCEBC5", "#E0F3DB", "#F7FCF0"},
	"OrRd":   {"#7F0000", "#B30000", "#D7301F", "#EF6548", "#FC8D59", "#FDBB84", "#FDD49E", "#FEE8C8", "#FFF7EC"},
	"PuBu":   {"#023858", "#045A8D", "#0570B0", "#3690C0", "#74A9CF", "#A6BDDB", "#D0D1E6", "#ECE7F2", "#FFF7FB"},
	"PuBuGn": {"#014636", "#016C59", "#02818A", "#3690C0", "#67A9CF", "#A6BDDB", "#D0D1E6", "#ECE2F0", "#FFF7FB"},
	"PuRd":   {"#67001F", "#980043", "#CE1256", "#E7298A", "#DF65B0", "#C994C7", "#D4B9DA", "#E7E1EF", "#F7F4F9"},
	"RdPu":   {"#49006A", "#7A0177", "#AE017E", "#DD3497", "#F768A1", "#FA9FB5", "#FCC5C0", "#FDE0DD", "#FFF7F3"},
	"YlGn":   {"#004529", "#006837", "#238443", "#41AB5D", "#78C679", "#ADDD8E", "#D9F0A3", "#F7FCB9", "#FFFFE5"},
	"YlGnBu": {"#081D58", "#253494", "#225EA8", "#1D91C0", "#41B6C4", "#7FCDBB", "#C7E9B4", "#EDF8B1", "#FFFFD9"},
	"YlOrBr": {"#662506", "#993404", "#CC4C02", "#EC7014", "#FE9929", "#FEC44F", "#FEE391", "#FFF7BC", "#FFFFE5"},
	"YlOrRd": {"#800026", "#BD0026", "#E31A1C", "#FC4E2A", "#FD8D3C", "#FEB24C", "#FED976", "#FFEDA0", "#FFFFCC"},

	// Sequential, single hue.
	"Blues":   {"#08306B", "#08519C", "#2171B5", "#4292C6", "#6BAED6", "#9ECAE1", "#C6DBEF", "#DEEBF7", "#F7FBFF"},
	"Greens":  {"#00441B", "#006D2C", "#238B45", "#41AB5D", "#74C476", "#A1D99B", "#C7E9C0", "#E5F5E0", "#F7FCF5"},
	"Greys":   {"#000000", "#252525", "#525252", "#737373", "#969696", "#BDBDBD", "#D9D9D9", "#F0F0F0", "#FFFFFF"},
	"Oranges": {"#7F2704", "#A63603", "#D94801", "#F16913", "#FD8D3C", "#FDAE6B", "#FDD0A2", "#FEE6CE", "#FFF5EB"},
	"Purples": {"#3F007D", "#54278F", "#6A51A3", "#807DBA", "#9E9AC8", "#BCBDDC", "#DADAEB", "#EFEDF5", "#FCFBFD"},
	"Reds":    {"#67000D", "#A50F15", "#CB181D", "#EF3B2C", "#FB6A4A", "#FC9272", "#FCBBA1", "#FEE0D2", "#FFF5F0"},

	// Diverging.
	"BrBG":     {"#003C30", "#01665E", "#35978F", "#80CDC1", "#C7EAE5", "#F5F5F5", "#F6E8C3", "#DFC27D", "#BF812D", "#8C510A", "#543005"},
	"PiYG":     {"#276419", "#4D9221", "#7FBC41", "#B8E186", "#E6F5D0", "#F7F7F7", "#FDE0EF", "#F1B6DA", "#DE77AE", "#C51B7D", "#8E0152"},
	"PRGn":     {"#00441B", "#1B7837", "#5AAE61", "#A6DBA0", "#D9F0D3", "#F7F7F7", "#E7D4E8", "#C2A5CF", "#9970AB", "#762A83", "#40004B"},
	"PuOr":     {"#2D004B", "#542788", "#8073AC", "#B2ABD2", "#D8DAEB", "#F7F7F7", "#FEE0B6", "#FDB863", "#E08214", "#B35806", "#7F3B08"},
	"RdBu":     {"#053061", "#2166AC", "#4393C3", "#92C5DE", "#D1E5F0", "#F7F7F7", "#FDDBC7", "#F4A582", "#D6604D", "#B2182B", "#67001F"},
	"RdGy":     {"#1A1A1A", "#4D4D4D", "#878787", "#BABABA", "#E0E0E0", "#FFFFFF", "#FDDBC7", "#F4A582", "#D6604D", "#B2182B", "#67001F"},
	"RdYlBu":   {"#313695", "#4575B4", "#74ADD1", "#ABD9E9", "#E0F3F8", "#FFFFBF", "#FEE090", "#FDAE61", "#F46D43", "#D73027", "#A50026"},
	"RdYlGn":   {"#006837", "#1A9850", "#66BD63", "#A6D96A", "#D9EF8B", "#FEE08B", "#FDAE61", "#F46D43", "#D73027", "#A50026"},
	"Spectral": {"#9E0142", "#D53E4F", "#F46D43", "#FDAE61", "#FEE08B", "#FFFFBF", "#E6F598", "#ABDDA4", "#66C2A5", "#3288BD", "#5E4FA2"},

	// Qualitative.
	"Accent":  {"#7FC97F", "#BEAED4", "#FDC086", "#FFFF99", "#386CB0", "#F0027F", "#BF5B17", "#666666"},
	"Dark2":   {"#1B9E77", "#D95F02", "#7570B3", "#E7298A", "#66A61E", "#E6AB02", "#A6761D", "#666666"},
	"Paired":  {"#A6CEE3", "#1F78B4", "#B2DF8A", "#33A02C", "#FB9A99", "#E31A1C", "#FDBF6F", "#FF7F00", "#CAB2D6", "#6A3D9A", "#FFFF99", "#B15928"},
	"Pastel1": {"#FBB4AE", "#B3CDE3", "#CCEBC5", "#DECBE4", "#FED9A6", "#FFFFCC", "#E5D8BD", "#FDDAEC", "#F2F2F2"},
	"Pastel2": {"#B3E2CD", "#FDCDAC", "#CBD5E8", "#F4CAE4", "#E6F5C9", "#FFF2AE", "#F1E2CC", "#CCCCCC"},
	"Set1":    {"#E41A1C", "#377EB8", "#4DAF4A", "#984EA3", "#FF7F00", "#FFFF33", "#A65628", "#F781BF", "#999999"},
	"Set2":    {"#66C2A5", "#FC8D62", "#8DA0CB", "#E78AC3", "#A6D854", "#FFD92F", "#E5C494", "#B3B3B3"},
	"Set3":    {"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072", "#80B1D3", "#FDB462", "#B3DE69", "#FCCDE5", "#D9D9D9", "#BC80BD", "#CCEBC5", "#FFED6F"},
}

var (
	brewerOnce  sync.Once
	brewerByKey map[string][]RGB
	brewerNames []string
)

// loadBrewer parses the bundled anchor tables exactly once. A malformed
// bundled table is a programming error and panics at first use.
func loadBrewer() {
	brewerByKey = make(map[string][]RGB, len(brewerData))
	brewerNames = make([]string, 0, len(brewerData))
	for name, values := range brewerData {
		anchors := make([]RGB, len(values))
		for i, v := range values {
			anchors[i] = mustParseHex(v)
		}
		brewerByKey[strings.ToLower(name)] = anchors
		brewerNames = append(brewerNames, name)
	}
	sort.Strings(brewerNames)
}

// BrewerLookup returns the ordered anchor colours for the named Brewer
// palette. Lookup is a case-insensitive exact match against the key set.
// The returned slice is the caller's to mutate; the table itself never
// changes after load.
func BrewerLookup(name string) ([]RGB, bool) {
	brewerOnce.Do(loadBrewer)
	anchors, ok := brewerByKey[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return slices.Clone(anchors), true
}

// BrewerNames returns the published names of all bundled Brewer palettes in
// sorted order.
func BrewerNames() []string {
	brewerOnce.Do(loadBrewer)
	return brewerNames
}
