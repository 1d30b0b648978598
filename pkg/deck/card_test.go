package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNumber(t *testing.T) {
	a := assert.New(t)

	c := NewNumber(7)
	a.Equal(Number, c.Kind)
	a.Equal(7, c.Value)
	a.True(c.IsNumber())

	a.Panics(func() { NewNumber(13) })
	a.Panics(func() { NewNumber(-1) })
}

func TestNewAction(t *testing.T) {
	a := assert.New(t)

	c := NewAction(SecondChance)
	a.Equal(Action, c.Kind)
	a.Equal(SecondChance, c.ActionKind)
	a.True(c.IsAction(SecondChance))
	a.False(c.IsAction(Freeze))
	a.False(c.IsNumber())

	a.Panics(func() { NewAction("bogus") })
}

func TestNewModifier(t *testing.T) {
	a := assert.New(t)

	c := NewModifier(Add, 4)
	a.Equal(Modifier, c.Kind)
	a.Equal(Add, c.ModifierKind)
	a.Equal(4, c.Amount)

	a.Panics(func() { NewModifier("bogus", 2) })
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("0", NewNumber(0).String())
	a.Equal("12", NewNumber(12).String())
	a.Equal("+4", NewModifier(Add, 4).String())
	a.Equal("x2", NewModifier(Multiply, 2).String())
	a.Equal("fz", NewAction(Freeze).String())
	a.Equal("f3", NewAction(FlipThree).String())
	a.Equal("sc", NewAction(SecondChance).String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Nil(CardFromString(""))
	a.Equal(NewNumber(7), CardFromString("7"))
	a.Equal(NewModifier(Add, 10), CardFromString("+10"))
	a.Equal(NewModifier(Multiply, 2), CardFromString("x2"))
	a.Equal(NewAction(FlipThree), CardFromString("f3"))

	a.Panics(func() { CardFromString("bogus") })
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("3,+4,sc,12")
	a.Len(cards, 4)
	a.Equal("3,+4,sc,12", CardsToString(cards))

	a.Len(CardsFromString(""), 0)
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(NewNumber(5).Equal(NewNumber(5)))
	a.False(NewNumber(5).Equal(NewNumber(6)))
	a.False(NewNumber(2).Equal(NewModifier(Add, 2)))
	a.True(NewAction(Freeze).Equal(NewAction(Freeze)))
}
