// Command atlink-shell is an interactive AT console: every line typed is
// sent as a command, the bound final result is printed, and unsolicited
// traffic is echoed as it arrives.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zmolnar/go-atlink"
	"github.com/zmolnar/go-atlink/internal/logging"
	"github.com/zmolnar/go-atlink/platform"
	"github.com/zmolnar/go-atlink/platform/serial"
	"github.com/zmolnar/go-atlink/platform/telnetio"
	"github.com/zmolnar/go-atlink/proto/std"
	"github.com/zmolnar/go-atlink/wire"
)

func main() {
	var (
		tty     = flag.String("tty", serial.PathFromEnv(), "serial port path")
		bridge  = flag.String("telnet", "", "ser2net/telnet bridge address (host:port); overrides -tty")
		verbose = flag.Bool("v", false, "verbose output")
	)
	flag.Parse()

	logConfig := logging.DefaultConfig()
	logConfig.Level = logging.LevelWarn
	if *verbose {
		logConfig.Level = logging.LevelTrace
	}
	logging.SetDefault(logging.NewLogger(logConfig))

	var (
		io  platform.DeviceIO
		err error
	)
	if *bridge != "" {
		io, err = telnetio.Dial(*bridge)
	} else {
		io, err = serial.Open(*tty)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "atlink-shell: %v\n", err)
		os.Exit(1)
	}

	urcs := wire.NewURCPack()
	urcs.SetHandler(func(r wire.Response) {
		if any, ok := r.(*wire.AnyUrc); ok {
			fmt.Printf("<< %s\n", any.Payload.String())
		}
	})

	dev := atlink.NewDevice("shell", io, urcs, nil)
	go dev.Loop()
	defer dev.ShutDown()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := filepath.Join(os.TempDir(), ".atlink_shell_history")
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("atlink-shell: type AT commands, 'quit' to exit")

	for {
		input, err := line.Prompt("at> ")
		if err != nil {
			// ctrl-c or EOF
			fmt.Println()
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			return
		}
		line.AppendHistory(input)

		result := std.FinalResult()
		cmd := &std.Raw{Line: input}
		if err := dev.SendCommand(result, cmd, nil); err != nil {
			fmt.Printf("!! %v\n", err)
			continue
		}
		printResult(result)
	}
}

func printResult(result *wire.Pack) {
	switch {
	case wire.Holds[*std.Ok](result):
		fmt.Println("OK")
	case wire.Holds[*std.Error](result):
		fmt.Println("ERROR")
	default:
		if cms, ok := wire.As[*std.CmsError](result); ok {
			fmt.Printf("+CMS ERROR: %d\n", cms.Code)
			return
		}
		if cme, ok := wire.As[*std.CmeError](result); ok {
			fmt.Printf("+CME ERROR: %d\n", cme.Code.Value)
			return
		}
		fmt.Println("?? unbound result")
	}
}
