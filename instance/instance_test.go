package instance_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/evenflow/gen"
	"github.com/katalvlaran/evenflow/instance"
	"github.com/katalvlaran/evenflow/minrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `3 3
1 2 1
2 3 2
1 3 3
4 2
1 2 1
3 4 5
2 0
4 4
1 2 1
2 3 2
3 4 3
4 1 4
0 0
`

// TestReadAll_Sample parses the four canonical data sets.
func TestReadAll_Sample(t *testing.T) {
	insts, err := instance.ReadAll(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, insts, 4)

	assert.Equal(t, 3, insts[0].Junctions)
	assert.Equal(t, minrange.Edge{From: 2, To: 3, Weight: 2}, insts[0].Edges[1])
	assert.Equal(t, 2, insts[2].Junctions)
	assert.Empty(t, insts[2].Edges)

	var got []int
	for _, inst := range insts {
		got = append(got, minrange.Range(inst))
	}
	assert.Equal(t, []int{1, -1, -1, 2}, got)
}

// TestReader_SentinelFirst yields no data sets.
func TestReader_SentinelFirst(t *testing.T) {
	insts, err := instance.ReadAll(strings.NewReader("0 0\n3 1\n1 2 3\n"))
	require.NoError(t, err)
	assert.Empty(t, insts)
}

// TestReader_NoSentinel accepts a clean end of stream and keeps returning EOF.
func TestReader_NoSentinel(t *testing.T) {
	r := instance.NewReader(strings.NewReader("2 1\n1 2 9"))
	inst, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Index())
	assert.Len(t, inst.Edges, 1)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, r.Index())
}

// TestReader_Errors covers malformed streams and validation failures.
func TestReader_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		set   string
	}{
		{"truncated triple", "3 2\n1 2 1\n2 3", instance.ErrTruncated, "data set 1"},
		{"truncated header", "3", instance.ErrTruncated, "data set 1"},
		{"bad token", "3 1\n1 x 2\n", instance.ErrBadToken, "data set 1"},
		{"negative count", "3 -1\n", instance.ErrNegativeCount, "data set 1"},
		{"one junction", "1 0\n", minrange.ErrTooFewJunctions, "data set 1"},
		{"too many pipes", "2 2\n1 2 1\n1 2 2\n", minrange.ErrTooManyEdges, "data set 1"},
		{"weight", "2 1\n1 2 10001\n", minrange.ErrWeightOutOfRange, "data set 1"},
		{"second set junction", "2 1\n1 2 1\n3 1\n1 4 2\n", minrange.ErrJunctionOutOfRange, "data set 2"},
		{"bad token in second header", "2 1\n1 2 1\nz 1\n", instance.ErrBadToken, "data set 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.ReadAll(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.set)
		})
	}
}

// TestReader_HugeHeader returns an error, not a panic, when a header
// announces far more pipes than the stream holds.
func TestReader_HugeHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"count within limit", "100000000 4000000000000000\n1 2 3\n", instance.ErrTruncated},
		{"count above limit", "100000000 5000000000000000\n1 2 3\n", minrange.ErrTooManyEdges},
		{"junctions overflow n(n-1)", "4000000000 3\n1 2 3\n", instance.ErrTruncated},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var (
				insts []minrange.Instance
				err   error
			)
			require.NotPanics(t, func() {
				insts, err = instance.ReadAll(strings.NewReader(tc.input))
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "data set 1")
			assert.Nil(t, insts)
		})
	}
}

// TestEncode_RoundTrip writes generated data sets and reads them back.
func TestEncode_RoundTrip(t *testing.T) {
	a, err := gen.Cycle(5, gen.WithSeed(1))
	require.NoError(t, err)
	b, err := gen.Disconnected(4, gen.WithSeed(2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Encode(&buf, []minrange.Instance{a, b}))
	assert.True(t, strings.HasSuffix(buf.String(), "0 0\n"))

	back, err := instance.ReadAll(&buf)
	require.NoError(t, err)
	assert.Equal(t, []minrange.Instance{a, b}, back)
}

func solveAll(t *testing.T, insts []minrange.Instance) []minrange.Result {
	t.Helper()
	results := make([]minrange.Result, len(insts))
	for i, inst := range insts {
		res, err := minrange.MinRange(inst)
		require.NoError(t, err)
		results[i] = res
	}

	return results
}

// TestWrite_Plain prints one integer per line in input order.
func TestWrite_Plain(t *testing.T) {
	insts, err := instance.ReadAll(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, instance.FormatPlain, insts, solveAll(t, insts)))
	assert.Equal(t, "1\n-1\n-1\n2\n", buf.String())
}

// TestWrite_JSON decodes the emitted array.
func TestWrite_JSON(t *testing.T) {
	insts, err := instance.ReadAll(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, instance.FormatJSON, insts, solveAll(t, insts)))

	var answers []instance.Answer
	require.NoError(t, json.Unmarshal(buf.Bytes(), &answers))
	require.Len(t, answers, 4)
	assert.Equal(t, 1, answers[0].DataSet)
	assert.Equal(t, 1, answers[0].Range)
	assert.Len(t, answers[0].Tree, 2)
	assert.Equal(t, -1, answers[1].Range)
	assert.Empty(t, answers[1].Tree)
	assert.Equal(t, 4, answers[3].Pipes)
	assert.Contains(t, buf.String(), `"weight": 1`)
}

// TestWrite_Table renders a header and a summary footer.
func TestWrite_Table(t *testing.T) {
	insts, err := instance.ReadAll(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, instance.FormatTable, insts, solveAll(t, insts)))
	out := strings.ToUpper(buf.String())
	assert.Contains(t, out, "JUNCTIONS")
	assert.Contains(t, out, "2/4 CONNECTED")
}

// TestWrite_Errors covers bad format names and mismatched inputs.
func TestWrite_Errors(t *testing.T) {
	err := instance.Write(io.Discard, instance.FormatPlain, make([]minrange.Instance, 2), nil)
	assert.ErrorIs(t, err, instance.ErrLengthMismatch)

	err = instance.Write(io.Discard, instance.Format("xml"), nil, nil)
	assert.ErrorIs(t, err, instance.ErrUnknownFormat)
}

// TestParseFormat accepts any case and rejects unknown names.
func TestParseFormat(t *testing.T) {
	f, err := instance.ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, instance.FormatJSON, f)

	_, err = instance.ParseFormat("yaml")
	assert.True(t, errors.Is(err, instance.ErrUnknownFormat))
}
