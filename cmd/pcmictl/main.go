// Command pcmictl is a small command-line demo for the pcmi client,
// grounded on the teacher's vogod flag-driven entry point (connection
// string flag, verbose flag, signal-based shutdown) but wired to a
// PCMI controller instead of a Vitotronic Optolink device.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vklabs/pcmi"
	"github.com/vklabs/pcmi/transport"
)

var (
	port    = flag.String("p", "/dev/ttyUSB0", "serial port the controller bus is attached to")
	serial  = flag.String("c", "", "controller serial number (8 digits)")
	zone    = flag.Int("z", 0, "zone number to query (0 = all zones)")
	command = flag.String("cmd", "zone-parameters", "zone-parameters | zone-variables | version | alarms | device-parameters | device-variables")
	verbose = flag.Bool("v", false, "verbose logging")
)

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *serial == "" {
		fmt.Fprintln(os.Stderr, "pcmictl: -c <serial number> is required")
		os.Exit(2)
	}

	t := transport.NewSerialTransport(transport.DefaultSerialConfig(*port))
	client := pcmi.NewClient(t, pcmi.DefaultConfig())

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		log.Info("signal received, disconnecting")
		client.Disconnect()
		t.Close()
		os.Exit(0)
	}()

	if err := client.Connect(*serial); err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer client.Disconnect()

	if err := run(client); err != nil {
		log.Fatalf("%s: %v", *command, err)
	}
}

func run(client *pcmi.Client) error {
	switch *command {
	case "zone-parameters":
		it := client.DownloadZoneParameters()
		defer it.Close()
		for it.Next() {
			zp := it.Value()
			fmt.Printf("zone %d: setpoint=%s\n", zp.ZoneNumber, zp.TempSetpoint)
		}
		return it.Err()

	case "zone-variables":
		it := client.DownloadZoneVariables()
		defer it.Close()
		for it.Next() {
			zv := it.Value()
			fmt.Printf("zone %d: actual=%s\n", zv.ZoneNumber, zv.ActualTemperature)
		}
		return it.Err()

	case "version":
		v, err := client.DownloadVersion()
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil

	case "alarms":
		it := client.DownloadAlarms(byte(*zone))
		defer it.Close()
		for it.Next() {
			al := it.Value()
			fmt.Printf("zone %d: %d alarms (%d active)\n", al.ZoneNumber, al.TotalCount, len(al.ActiveAlarms()))
		}
		return it.Err()

	case "device-parameters":
		it := client.DownloadDeviceParameters(byte(*zone), nil)
		defer it.Close()
		for it.Next() {
			fmt.Printf("%#v\n", it.Value())
		}
		return it.Err()

	case "device-variables":
		it := client.DownloadDeviceVariables(byte(*zone), nil)
		defer it.Close()
		for it.Next() {
			fmt.Printf("%#v\n", it.Value())
		}
		return it.Err()

	default:
		return fmt.Errorf("unknown command %q", *command)
	}
}
