// Demo program: builds a sample session and runs both report modes, the
// way a notebook user would call the inspector.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/leengari/varspect/internal/display"
	"github.com/leengari/varspect/internal/inspect"
	"github.com/leengari/varspect/internal/logging"
	"github.com/leengari/varspect/internal/session"
)

type response struct {
	Status  int
	Body    string
	headers map[string]string
}

// Lines splits the body into lines.
func (r response) Lines() []string {
	return strings.Split(r.Body, "\n")
}

func main() {
	logger, closeFn := logging.Setup(logging.Options{Level: "warn"})
	defer closeFn()
	slog.SetDefault(logger)

	env := session.NewEnvironment()
	env.Define("x", 10)
	env.Define("y", "Hello, world!")
	env.Define("z", strings.Repeat("This is a very long string that should be truncated. ", 10))
	env.Define("example", map[string]string{"key": "value", "another_key": "another_value"})
	env.Define("longList", make([]int, 100))
	env.Define("resp", response{Status: 200, Body: "ok\ndone", headers: map[string]string{"Content-Type": "text/plain"}})
	env.Define("internal_", []byte("hidden by the trailing-underscore rule"))
	env.DefineModule("strings", session.NewModule("strings"))
	env.DefineBuiltin("viewVar", func() {}, "Render a report of the session's variables.")

	session.RegisterDoc(response{}, "response is a tiny stand-in for an HTTP response value.")
	session.RegisterMemberDoc("main.response.Lines", "Lines splits the body into lines.")

	ins := inspect.New(inspect.Config{
		Sink: display.NewTerminalSink(os.Stdout, false),
	})

	// Basic view, then everything, then one value in both views.
	ins.Inspect(env, nil, false)
	ins.Inspect(env, nil, true)

	resp, _ := env.Get("resp")
	ins.Inspect(env, resp, false)
	ins.Inspect(env, resp, true)
}
