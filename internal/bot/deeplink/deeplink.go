// Package deeplink parses the /order_<id>, /track_<code>, /promo_<code> and
// /restore_<id> command families.
package deeplink

import (
	"strconv"
	"strings"
)

// Family identifies a deep-link command family.
type Family int

const (
	FamilyOrder Family = iota + 1
	FamilyTrack
	FamilyPromo
	FamilyRestore
)

func (f Family) String() string {
	switch f {
	case FamilyOrder:
		return "order"
	case FamilyTrack:
		return "track"
	case FamilyPromo:
		return "promo"
	case FamilyRestore:
		return "restore"
	}
	return "unknown"
}

var prefixes = []struct {
	prefix string
	family Family
}{
	{"/order_", FamilyOrder},
	{"/track_", FamilyTrack},
	{"/promo_", FamilyPromo},
	{"/restore_", FamilyRestore},
}

// Link is a parsed deep-link command.
type Link interface {
	Family() Family
}

type Order struct{ ID int64 }

type Track struct{ Number string }

type Promo struct{ Code string }

type Restore struct{ ID string }

// Malformed is a known family whose argument did not parse.
type Malformed struct {
	Of  Family
	Raw string
}

func (Order) Family() Family       { return FamilyOrder }
func (Track) Family() Family       { return FamilyTrack }
func (Promo) Family() Family       { return FamilyPromo }
func (Restore) Family() Family     { return FamilyRestore }
func (m Malformed) Family() Family { return m.Of }

// Parse returns the link in text, or false when text is not a deep link at all.
// The argument is everything after the first underscore, up to the first space
// or bot mention.
func Parse(text string) (Link, bool) {
	text = strings.TrimSpace(text)
	for _, p := range prefixes {
		if !strings.HasPrefix(text, p.prefix) {
			continue
		}
		arg := text[len(p.prefix):]
		if i := strings.IndexAny(arg, " @"); i >= 0 {
			arg = arg[:i]
		}
		return parseArg(p.family, arg, text), true
	}
	return nil, false
}

func parseArg(family Family, arg, raw string) Link {
	if arg == "" {
		return Malformed{Of: family, Raw: raw}
	}
	switch family {
	case FamilyOrder:
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return Malformed{Of: family, Raw: raw}
		}
		return Order{ID: id}
	case FamilyTrack:
		return Track{Number: arg}
	case FamilyPromo:
		return Promo{Code: strings.ToUpper(arg)}
	case FamilyRestore:
		return Restore{ID: arg}
	}
	return Malformed{Of: family, Raw: raw}
}
