package domain

// Color is the side a piece belongs to. Red pieces outrank their black
// counterparts within the same family.
type Color int

const (
	ColorRed Color = iota
	ColorBlack
)

func (c Color) String() string {
	if c == ColorRed {
		return "RED"
	}
	return "BLACK"
}

// Family is the piece family, independent of color.
type Family int

const (
	FamilyGeneral Family = iota
	FamilyAdvisor
	FamilyElephant
	FamilyChariot
	FamilyHorse
	FamilyCannon
	FamilySoldier
)

var familyNames = [...]string{"GENERAL", "ADVISOR", "ELEPHANT", "CHARIOT", "HORSE", "CANNON", "SOLDIER"}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return "UNKNOWN"
	}
	return familyNames[f]
}

// PieceKind identifies one of the 14 canonical tile kinds.
type PieceKind int

const (
	GeneralRed PieceKind = iota
	GeneralBlack
	AdvisorRed
	AdvisorBlack
	ElephantRed
	ElephantBlack
	ChariotRed
	ChariotBlack
	HorseRed
	HorseBlack
	CannonRed
	CannonBlack
	SoldierRed
	SoldierBlack
)

// piecePoints is the fixed point lookup; higher is stronger.
var piecePoints = [...]int{
	GeneralRed:    14,
	GeneralBlack:  13,
	AdvisorRed:    12,
	AdvisorBlack:  11,
	ElephantRed:   10,
	ElephantBlack: 9,
	ChariotRed:    8,
	ChariotBlack:  7,
	HorseRed:      6,
	HorseBlack:    5,
	CannonRed:     4,
	CannonBlack:   3,
	SoldierRed:    2,
	SoldierBlack:  1,
}

// Piece is an immutable tile value. Equality and ordering are by point.
type Piece struct {
	Kind PieceKind
}

// Point returns the fixed point value in 1..14.
func (p Piece) Point() int {
	return piecePoints[p.Kind]
}

// Family returns the piece family (GENERAL, SOLDIER, ...).
func (p Piece) Family() Family {
	return Family(int(p.Kind) / 2)
}

// Color returns RED or BLACK.
func (p Piece) Color() Color {
	if int(p.Kind)%2 == 0 {
		return ColorRed
	}
	return ColorBlack
}

func (p Piece) String() string {
	return p.Family().String() + "_" + p.Color().String()
}

// MaxPoint returns the highest point value in the given pieces, or 0 for
// an empty slice.
func MaxPoint(pieces []Piece) int {
	max := 0
	for _, p := range pieces {
		if p.Point() > max {
			max = p.Point()
		}
	}
	return max
}
