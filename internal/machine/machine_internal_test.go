package machine

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/xdg/flotilla/internal/flags"
	"github.com/xdg/flotilla/internal/proc"
)

// fakeRunner records invocations and replays canned responses in order.
type fakeRunner struct {
	calls   [][]string
	outputs []string
	errs    []error
}

func (f *fakeRunner) Output(args []string, opts proc.SpawnOpts) (string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, args)
	var out string
	if i < len(f.outputs) {
		out = f.outputs[i]
	}
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return out, err
}

const defaultEnvOutput = `export DOCKER_TLS_VERIFY="1"
export DOCKER_HOST="tcp://192.168.99.100:2376"
export DOCKER_MACHINE_NAME="default"
`

type MachineInternalTestSuite struct {
	suite.Suite
}

func (suite *MachineInternalTestSuite) TestEnvArgs() {
	fake := &fakeRunner{outputs: []string{defaultEnvOutput}}
	m := New()
	m.setRunner(fake)

	env, err := m.Env("default", flags.Options{flags.Opt("shell", flags.String("bash"))})

	suite.Require().NoError(err)
	suite.Equal([][]string{{"env", "--shell", "bash", "default"}}, fake.calls)
	suite.Equal("tcp://192.168.99.100:2376", env["DOCKER_HOST"])
}

func (suite *MachineInternalTestSuite) TestStoragePathPrefixesEveryCall() {
	fake := &fakeRunner{outputs: []string{"default\nextra\n"}}
	m := New()
	m.StoragePath = "/var/lib/flotilla/machine"
	m.setRunner(fake)

	names, err := m.List()

	suite.Require().NoError(err)
	suite.Equal([][]string{{"-s", "/var/lib/flotilla/machine", "ls", "-q"}}, fake.calls)
	suite.Equal([]string{"default", "extra"}, names)
}

func (suite *MachineInternalTestSuite) TestCreate() {
	fake := &fakeRunner{outputs: []string{"", defaultEnvOutput}}
	m := New()
	m.setRunner(fake)

	host, err := m.Create("default", "virtualbox", flags.Options{
		flags.Opt("memory", flags.Int(2048)),
		flags.Opt("cpuCount", flags.Int(2)),
	})

	suite.Require().NoError(err)
	suite.Require().Len(fake.calls, 2)
	suite.Equal([]string{
		"create", "--driver", "virtualbox",
		"--virtualbox-memory", "2048",
		"--virtualbox-cpu-count", "2",
		"default",
	}, fake.calls[0])
	suite.Equal([]string{"env", "default"}, fake.calls[1])
	suite.Equal("default", host.Name())
	suite.Equal("tcp://192.168.99.100:2376", host.Env()["DOCKER_HOST"])
}

func (suite *MachineInternalTestSuite) TestCreateFailureSkipsEnvQuery() {
	fake := &fakeRunner{errs: []error{&proc.ExitError{Program: Program, Code: 1}}}
	m := New()
	m.setRunner(fake)

	host, err := m.Create("default", "virtualbox", nil)

	var exitErr *proc.ExitError
	suite.Require().ErrorAs(err, &exitErr)
	suite.Nil(host)
	suite.Len(fake.calls, 1)
}

func (suite *MachineInternalTestSuite) TestRefreshEnvKeepsOldMappingOnFailure() {
	fake := &fakeRunner{
		outputs: []string{defaultEnvOutput, "Host does not exist\n"},
	}
	m := New()
	m.setRunner(fake)

	host, err := m.Get("default", nil)
	suite.Require().NoError(err)

	err = host.RefreshEnv()
	suite.Require().ErrorIs(err, ErrNoSentinel)
	suite.Equal("tcp://192.168.99.100:2376", host.Env()["DOCKER_HOST"],
		"failed refresh must not clobber the resolved environment")
}

func (suite *MachineInternalTestSuite) TestRefreshEnvReusesEnvOpts() {
	refreshed := `export DOCKER_HOST="tcp://10.0.0.9:2376"
export DOCKER_MACHINE_NAME="default"
`
	fake := &fakeRunner{outputs: []string{defaultEnvOutput, refreshed}}
	m := New()
	m.setRunner(fake)

	host, err := m.Get("default", flags.Options{flags.Opt("shell", flags.String("bash"))})
	suite.Require().NoError(err)

	suite.Require().NoError(host.RefreshEnv())
	suite.Equal([]string{"env", "--shell", "bash", "default"}, fake.calls[1])
	suite.Equal("tcp://10.0.0.9:2376", host.Env()["DOCKER_HOST"])
}

func (suite *MachineInternalTestSuite) TestEnvEncodingErrorDoesNotSpawn() {
	fake := &fakeRunner{}
	m := New()
	m.setRunner(fake)

	_, err := m.Env("default", flags.Options{
		flags.Opt("buildArg", flags.Dict{{Key: "bad key", Value: flags.String("x")}}),
	})

	suite.Require().ErrorIs(err, flags.ErrInvalidValue)
	suite.Empty(fake.calls)
}

func TestMachineInternalTestSuite(t *testing.T) {
	suite.Run(t, new(MachineInternalTestSuite))
}
