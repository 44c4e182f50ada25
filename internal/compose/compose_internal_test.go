package compose

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/xdg/flotilla/internal/flags"
	"github.com/xdg/flotilla/internal/proc"
)

// fakeRunner records invocations. Start delegates to startFn when set so
// individual tests can back an invocation with a real short-lived process.
type fakeRunner struct {
	startCalls [][]string
	startOpts  []proc.SpawnOpts
	startFn    func(args []string, opts proc.SpawnOpts) (*proc.Handle, error)

	outputCalls [][]string
	outputOpts  []proc.SpawnOpts
	outputs     []string
	outputErrs  []error
}

func (f *fakeRunner) Start(args []string, opts proc.SpawnOpts) (*proc.Handle, error) {
	f.startCalls = append(f.startCalls, args)
	f.startOpts = append(f.startOpts, opts)
	if f.startFn != nil {
		return f.startFn(args, opts)
	}
	return nil, nil
}

func (f *fakeRunner) Output(args []string, opts proc.SpawnOpts) (string, error) {
	i := len(f.outputCalls)
	f.outputCalls = append(f.outputCalls, args)
	f.outputOpts = append(f.outputOpts, opts)
	var out string
	if i < len(f.outputs) {
		out = f.outputs[i]
	}
	var err error
	if i < len(f.outputErrs) {
		err = f.outputErrs[i]
	}
	return out, err
}

func newFakeCompose(cfg Config) (*Compose, *fakeRunner) {
	c := New(cfg)
	fake := &fakeRunner{}
	c.setRunner(fake)
	return c, fake
}

type ComposeInternalTestSuite struct {
	suite.Suite
}

func (suite *ComposeInternalTestSuite) TestArgAssembly() {
	tests := []struct {
		name   string
		cfg    Config
		invoke func(c *Compose) error
		want   []string
	}{
		{
			name:   "bare subcommand",
			invoke: func(c *Compose) error { _, err := c.Build(nil); return err },
			want:   []string{"build"},
		},
		{
			name: "configured files become repeated -f flags",
			cfg:  Config{Files: []string{"docker-compose.yml", "override.yml"}},
			invoke: func(c *Compose) error {
				_, err := c.Build(flags.Options{flags.Opt("pull", flags.Bool(true))}, "db", "client")
				return err
			},
			want: []string{
				"-f", "docker-compose.yml", "-f", "override.yml",
				"build", "--pull", "db", "client",
			},
		},
		{
			name: "up with options and services",
			invoke: func(c *Compose) error {
				_, err := c.Up(flags.Options{
					flags.Opt("forceRecreate", flags.Bool(true)),
					flags.Opt("timeout", flags.Int(30)),
				}, "web")
				return err
			},
			want: []string{"up", "--force-recreate", "--timeout", "30", "web"},
		},
		{
			name: "down takes no services",
			invoke: func(c *Compose) error {
				_, err := c.Down(flags.Options{flags.Opt("volumes", flags.Bool(true))})
				return err
			},
			want: []string{"down", "--volumes"},
		},
		{
			name: "kill signal renders as -s after generic flags",
			invoke: func(c *Compose) error {
				_, err := c.Kill(flags.Options{
					flags.Opt("signal", flags.String("SIGTERM")),
					flags.Opt("timeout", flags.Int(5)),
				}, "web")
				return err
			},
			want: []string{"kill", "--timeout", "5", "-s", "SIGTERM", "web"},
		},
		{
			name: "run detach and env expand to short flags",
			invoke: func(c *Compose) error {
				_, err := c.Run(flags.Options{
					flags.Opt("detach", flags.Bool(true)),
					flags.Opt("env", flags.List{flags.String("A=1"), flags.String("B=2")}),
				}, "web", "sh", "-c", "true")
				return err
			},
			want: []string{"run", "-d", "-e", "A=1", "-e", "B=2", "web", "sh", "-c", "true"},
		},
		{
			name: "exec detach false emits nothing",
			invoke: func(c *Compose) error {
				_, err := c.Exec(flags.Options{flags.Opt("detach", flags.Bool(false))}, "web", "ls")
				return err
			},
			want: []string{"exec", "web", "ls"},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			c, fake := newFakeCompose(tc.cfg)
			suite.Require().NoError(tc.invoke(c))
			suite.Require().Len(fake.startCalls, 1)
			suite.Equal(tc.want, fake.startCalls[0])
		})
	}
}

func (suite *ComposeInternalTestSuite) TestEncodingErrorDoesNotSpawn() {
	c, fake := newFakeCompose(Config{})

	_, err := c.Up(flags.Options{
		flags.Opt("buildArg", flags.Dict{{Key: "bad key", Value: flags.String("x")}}),
	})

	suite.Require().ErrorIs(err, flags.ErrInvalidValue)
	suite.Empty(fake.startCalls)
}

func (suite *ComposeInternalTestSuite) TestSpawnOptsCarryConfig() {
	var stdout, stderr bytes.Buffer
	c, fake := newFakeCompose(Config{
		Dir:    "/srv/project",
		Env:    map[string]string{"COMPOSE_PROJECT_NAME": "flotilla"},
		Stdout: &stdout,
		Stderr: &stderr,
	})

	_, err := c.Ps(nil)

	suite.Require().NoError(err)
	suite.Require().Len(fake.startOpts, 1)
	opts := fake.startOpts[0]
	suite.Equal("/srv/project", opts.Dir)
	suite.Equal(map[string]string{"COMPOSE_PROJECT_NAME": "flotilla"}, opts.Env)
	suite.Same(&stdout, opts.Stdout)
	suite.Same(&stderr, opts.Stderr)
}

func (suite *ComposeInternalTestSuite) TestImages() {
	c, fake := newFakeCompose(Config{Stdout: &bytes.Buffer{}})
	fake.outputs = []string{"sha256:abc\n\nsha256:def\n"}

	ids, err := c.Images(nil, true, "db")

	suite.Require().NoError(err)
	suite.Equal([]string{"sha256:abc", "sha256:def"}, ids)
	suite.Require().Len(fake.outputCalls, 1)
	suite.Equal([]string{"images", "-q", "db"}, fake.outputCalls[0])
	suite.Nil(fake.outputOpts[0].Stdout, "capturing operations must not attach configured streams")
}

func (suite *ComposeInternalTestSuite) TestImagesTableUnsupported() {
	c, fake := newFakeCompose(Config{})

	ids, err := c.Images(nil, false)

	suite.Require().ErrorIs(err, ErrImageTableUnsupported)
	suite.Nil(ids)
	suite.Empty(fake.outputCalls)
}

func (suite *ComposeInternalTestSuite) TestVersion() {
	c, fake := newFakeCompose(Config{})
	fake.outputs = []string{"1.29.2\n"}

	v, err := c.Version()

	suite.Require().NoError(err)
	suite.Equal("1.29.2", v)
	suite.Equal([]string{"version", "--short"}, fake.outputCalls[0])
}

func (suite *ComposeInternalTestSuite) TestVersionFailure() {
	c, fake := newFakeCompose(Config{})
	fake.outputErrs = []error{&proc.ExitError{Program: Program, Code: 127}}

	_, err := c.Version()

	var exitErr *proc.ExitError
	suite.Require().ErrorAs(err, &exitErr)
	suite.Equal(127, exitErr.Code)
}

func (suite *ComposeInternalTestSuite) TestEvents() {
	c, fake := newFakeCompose(Config{Files: []string{"dc.yml"}})
	line := `{"time":"t1","type":"container","action":"create","id":"1","service":"db"}`
	fake.startFn = func(args []string, opts proc.SpawnOpts) (*proc.Handle, error) {
		// Back the invocation with a real process so the stream sees real
		// pipe EOF ordering.
		return proc.Start("sh", []string{"-c", fmt.Sprintf("echo '%s'", line)}, opts)
	}

	s, err := c.Events(nil, "db")
	suite.Require().NoError(err)
	suite.Equal([]string{"-f", "dc.yml", "events", "--json", "db"}, fake.startCalls[0])
	suite.NotNil(s.Process)

	var actions []string
	for ev := range s.C {
		actions = append(actions, ev.Action)
	}
	suite.Require().NoError(s.Wait())
	suite.Equal([]string{"create"}, actions)
}

func (suite *ComposeInternalTestSuite) TestEventsStartFailure() {
	c, fake := newFakeCompose(Config{})
	startErr := errors.New("start docker-compose: executable not found")
	fake.startFn = func([]string, proc.SpawnOpts) (*proc.Handle, error) {
		return nil, startErr
	}

	s, err := c.Events(nil)

	suite.Require().ErrorIs(err, startErr)
	suite.Nil(s)
}

func TestComposeInternalTestSuite(t *testing.T) {
	suite.Run(t, new(ComposeInternalTestSuite))
}
