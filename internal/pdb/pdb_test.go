package pdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = "ATOM      1  N   ALA A   1      11.104  13.207   2.031  1.00 20.00           N"

func TestParse_SingleAtomRecord(t *testing.T) {
	atoms, err := Parse(sampleLine)

	require.NoError(t, err)
	require.Len(t, atoms, 1)
	assert.Equal(t, "N", atoms[0].Element)
	assert.InDelta(t, 11.104, atoms[0].Position[0], 1e-5)
	assert.InDelta(t, 13.207, atoms[0].Position[1], 1e-5)
	assert.InDelta(t, 2.031, atoms[0].Position[2], 1e-5)
}

func TestParse_IgnoresNonAtomRecords(t *testing.T) {
	text := "HEADER    PLANT PROTEIN\n" +
		"REMARK 350 BIOMOLECULE: 1\n" +
		sampleLine + "\n" +
		"TER\n" +
		"END\n"

	atoms, err := Parse(text)

	require.NoError(t, err)
	assert.Len(t, atoms, 1)
}

func TestParse_HETATMRecord(t *testing.T) {
	line := "HETATM 1001  O   HOH A 201      -4.000   2.500   0.250  1.00  0.00           O"

	atoms, err := Parse(line)

	require.NoError(t, err)
	require.Len(t, atoms, 1)
	assert.Equal(t, "O", atoms[0].Element)
	assert.InDelta(t, -4.0, atoms[0].Position[0], 1e-5)
}

func TestParse_ElementFallsBackToAtomName(t *testing.T) {
	// Element columns 77-78 left blank; the symbol must come from the
	// two-character slice of the atom-name field instead (" C" for an
	// alpha carbon named " CA ").
	line := "ATOM      2  CA  ALA A   1      12.560  14.100   3.000  1.00 20.00"

	atoms, err := Parse(line)

	require.NoError(t, err)
	require.Len(t, atoms, 1)
	assert.Equal(t, "C", atoms[0].Element)
}

func TestParse_MalformedCoordinateFails(t *testing.T) {
	line := "ATOM      1  N   ALA A   1      xx.xxx  13.207   2.031  1.00 20.00           N"

	atoms, err := Parse(line)

	assert.Nil(t, atoms)
	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Line)
	assert.Equal(t, "x", malformed.Field)
}

func TestParse_EmptyInput(t *testing.T) {
	atoms, err := Parse("")

	require.NoError(t, err)
	assert.Empty(t, atoms)
}

func TestParse_PreservesRecordOrder(t *testing.T) {
	text := "ATOM      1  N   ALA A   1       1.000   0.000   0.000  1.00 20.00           N\n" +
		"ATOM      2  C   ALA A   1       2.000   0.000   0.000  1.00 20.00           C\n" +
		"ATOM      3  O   ALA A   1       3.000   0.000   0.000  1.00 20.00           O\n"

	atoms, err := Parse(text)

	require.NoError(t, err)
	require.Len(t, atoms, 3)
	assert.Equal(t, []string{"N", "C", "O"}, []string{atoms[0].Element, atoms[1].Element, atoms[2].Element})
	assert.InDelta(t, 2.0, atoms[1].Position[0], 1e-5)
}
