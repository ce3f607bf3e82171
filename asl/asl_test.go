package asl_test

import (
	"bytes"
	"testing"

	"github.com/asl-lang/asl/asl"
	"github.com/asl-lang/asl/asl/interpreter/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() asl.Config {
	config := asl.DefaultConfig()
	config.Seed = 42
	config.CallStackLimit = 100
	return config
}

func TestDefaultConfig(t *testing.T) {
	config := asl.DefaultConfig()
	assert.Equal(t, uint(10_000), config.CallStackLimit)
	assert.Equal(t, 10, config.StackTraceFrames)
	assert.Nil(t, config.Trace)
}

func TestTableShape(t *testing.T) {
	executor := asl.NewTestingExecutor("", nil)
	res, d := asl.RunTree([]byte(`
functions:
  - name: main
    line: 1
    body:
      - kind: ASSIGN
        line: 2
        children:
          - {kind: ID, text: t}
          - {kind: FUNCALL, text: create_table, children: [{kind: LIST, children: [{kind: STRING, value: a}, {kind: STRING, value: b}]}]}
      - kind: FUNCALL
        text: add_row!
        line: 3
        children:
          - {kind: ID, text: t}
          - {kind: DICT, children: [{kind: STRING, value: a}, {kind: INT, value: "1"}, {kind: STRING, value: b}, {kind: INT, value: "2"}]}
      - {kind: WRITELN, line: 4, children: [{kind: FUNCALL, text: num_rows, children: [{kind: ID, text: t}]}]}
      - {kind: WRITELN, line: 5, children: [{kind: FUNCALL, text: num_columns, children: [{kind: ID, text: t}]}]}
      - {kind: RETURN, line: 6, children: [{kind: ID, text: t}]}
`), "shape.yaml", executor, testConfig())

	require.Nil(t, d)
	assert.Equal(t, "1\n2\n", executor.Output.String())
	assert.Equal(t, value.TableValueKind, res.Kind())
	assert.Equal(t, "[{'a': 1, 'b': 2}]", res.Display())
}

func TestFileRoundTrip(t *testing.T) {
	content := "a,b\n1,'x'\n2,'y'\n"
	executor := asl.NewTestingExecutor("", map[string]string{"in.csv": content})

	_, d := asl.RunTree([]byte(`
functions:
  - name: main
    body:
      - kind: ASSIGN
        children:
          - {kind: ID, text: t}
          - {kind: FUNCALL, text: read_file, children: [{kind: STRING, value: in.csv}]}
      - {kind: FUNCALL, text: write_file, children: [{kind: ID, text: t}, {kind: STRING, value: out.csv}]}
`), "copy.yaml", executor, testConfig())

	require.Nil(t, d)
	assert.Equal(t, content, executor.Files["out.csv"])
}

func TestMerge(t *testing.T) {
	executor := asl.NewTestingExecutor("", map[string]string{
		"t1.csv": "a\n1\n",
		"t2.csv": "a\n2\n",
	})

	_, d := asl.RunTree([]byte(`
functions:
  - name: main
    body:
      - kind: ASSIGN
        children: [{kind: ID, text: t1}, {kind: FUNCALL, text: read_file, children: [{kind: STRING, value: t1.csv}]}]
      - kind: ASSIGN
        children: [{kind: ID, text: t2}, {kind: FUNCALL, text: read_file, children: [{kind: STRING, value: t2.csv}]}]
      - kind: WRITELN
        children: [{kind: FUNCALL, text: merge, children: [{kind: ID, text: t1}, {kind: ID, text: t2}]}]
      - kind: WRITELN
        children: [{kind: FUNCALL, text: num_rows, children: [{kind: ID, text: t1}]}]
`), "merge.yaml", executor, testConfig())

	require.Nil(t, d)
	assert.Equal(t, "[{'a': 1}, {'a': 2}]\n2\n", executor.Output.String())
}

func TestSyntaxErrorDiagnostic(t *testing.T) {
	_, d := asl.RunTree([]byte(`
functions:
  - {name: main, line: 1}
  - {name: main, line: 4}
`), "dup.yaml", asl.NewTestingExecutor("", nil), testConfig())

	require.NotNil(t, d)
	assert.Equal(t, "syntax error", d.Category)
	assert.Equal(t, "ReferenceError", d.Kind)
	assert.Equal(t,
		"Error: Syntax Error (ReferenceError) at dup.yaml:4\nMultiple definitions of function 'main'\n",
		d.Display(false),
	)
}

func TestRuntimeErrorDiagnostic(t *testing.T) {
	_, d := asl.RunTree([]byte(`
functions:
  - name: main
    line: 1
    body:
      - {kind: FUNCALL, text: f, line: 2}
  - name: f
    line: 4
    body:
      - kind: WRITE
        line: 5
        children: [{kind: FUNCALL, text: num_row, line: 5, children: [{kind: INT, value: "1"}]}]
`), "typo.yaml", asl.NewTestingExecutor("", nil), testConfig())

	require.NotNil(t, d)
	assert.Equal(t, "runtime error", d.Category)
	assert.Equal(t, "UndefinedFunction", d.Kind)
	assert.Equal(t, uint(5), d.Span.Start.Line)
	assert.Contains(t, d.Notes, "Did you mean 'num_rows'?")
	assert.Equal(t, []string{"f called at typo.yaml:2", "main <entry point>"}, d.StackTrace)
}

func TestTrace(t *testing.T) {
	var trace bytes.Buffer
	config := testConfig()
	config.Trace = &trace

	_, d := asl.RunTree([]byte(`
functions:
  - name: main
    line: 1
    body:
      - {kind: FUNCALL, text: f, line: 2, children: [{kind: INT, value: "1"}]}
  - name: f
    line: 4
    params: [{name: x}]
    body:
      - {kind: RETURN, line: 5}
`), "trace.yaml", asl.NewTestingExecutor("", nil), config)

	require.Nil(t, d)
	assert.Contains(t, trace.String(), "f(x=1) <line 2>")
}
