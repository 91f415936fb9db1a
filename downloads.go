package pcmi

// downloadRecords drives the pull-ack loop shared by every multi-record
// download: request already sent, then receive/ack/receive until
// PCMI_END_OF_RECORD or a no-more-data error terminates the sequence
// (spec.md §5). requestFrame is the frame that solicited the first
// response, kept around so a retry has something to resend. On a timeout,
// a checksum mismatch, or PCMI_ER_TRY_AGAIN, the loop discards buffered
// input and resends the previous outgoing frame, up to cfg.MaxRetries
// times, before giving up (spec.md §4.7 items 5, 8). The returned closure
// is suitable as an Iterator's next function once the caller filters and
// decodes the frames it cares about.
func (c *Client) downloadRecords(requestFrame []byte) func() (*ParsedFrame, bool, error) {
	done := false
	lastFrame := requestFrame
	return func() (*ParsedFrame, bool, error) {
		if done {
			return nil, false, nil
		}

		var parsed *ParsedFrame
		var lastErr error
		for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
			if attempt > 0 {
				c.log.Warnf("download retry %d/%d", attempt+1, c.cfg.MaxRetries+1)
				c.transport.DiscardBuffers()
				if err := c.transport.Write(lastFrame); err != nil {
					done = true
					return nil, false, err
				}
			}

			resp, err := c.readResponse(0)
			if err != nil {
				if isRetryableReadError(err) {
					lastErr = err
					continue
				}
				done = true
				return nil, false, err
			}
			if resp.Command == PCMIErTryAgain {
				lastErr = newControllerError(resp.Command)
				continue
			}
			parsed = resp
			break
		}

		if parsed == nil {
			done = true
			c.log.Errorf("download failed after %d attempts", c.cfg.MaxRetries+1)
			return nil, false, lastErr
		}

		if parsed.Command == PCMIEndOfRecord {
			c.log.Debug("end of record sequence")
			done = true
			return nil, false, nil
		}
		if parsed.Command == PCMIErNoZone {
			c.log.Debug("no more zones")
			done = true
			return nil, false, nil
		}
		if isErrorCode(parsed.Command) {
			done = true
			cerr := newControllerError(parsed.Command)
			if cerr.Transient {
				c.log.Warnf("transient controller condition: 0x%02X", byte(parsed.Command))
			} else {
				c.log.Errorf("controller error: 0x%02X", byte(parsed.Command))
			}
			return nil, false, cerr
		}

		ack := buildSimpleFrame(PCMIOkSendNext)
		if err := c.transport.Write(ack); err != nil {
			done = true
			return nil, false, err
		}
		lastFrame = ack
		return parsed, true, nil
	}
}

// downloadSequence wraps downloadRecords with the state bookkeeping and
// count logging every download_* method shares, and filters/decodes
// frames with decode, skipping any whose command isn't one this download
// expects.
func downloadSequence[T any](c *Client, label string, requestFrame []byte, accept func(CommandCode) bool, decode func(*ParsedFrame) (T, error)) *Iterator[T] {
	if err := c.ensureConnected(); err != nil {
		return erroredIterator[T](err)
	}
	c.state = StateDownloading
	c.log.Debugf("downloading %s", label)

	if err := c.transport.Write(requestFrame); err != nil {
		c.state = StateConnected
		return erroredIterator[T](err)
	}

	next := c.downloadRecords(requestFrame)
	count := 0
	finish := func() {
		c.state = StateConnected
		c.log.Debugf("downloaded %d %s", count, label)
	}

	return newIterator(func() (T, bool, error) {
		for {
			frame, ok, err := next()
			if err != nil {
				finish()
				var zero T
				return zero, false, err
			}
			if !ok {
				finish()
				var zero T
				return zero, false, nil
			}
			if !accept(frame.Command) {
				continue
			}
			v, err := decode(frame)
			if err != nil {
				finish()
				var zero T
				return zero, false, err
			}
			count++
			return v, true, nil
		}
	}, func() error {
		if c.state == StateDownloading {
			err := c.transport.Write(buildSimpleFrame(PCMIBreak))
			c.state = StateConnected
			return err
		}
		return nil
	})
}

func erroredIterator[T any](err error) *Iterator[T] {
	return newIterator(func() (T, bool, error) {
		var zero T
		return zero, false, err
	}, func() error { return nil })
}

// DownloadZoneParameters requests PCMI_SEND_ZONE_PARM and streams a
// ZoneParameters record per zone.
func (c *Client) DownloadZoneParameters() *Iterator[*ZoneParameters] {
	return downloadSequence(c, "zone parameters", buildSimpleFrame(PCMISendZoneParm),
		func(cmd CommandCode) bool { return cmd == PCMIZPString1 || cmd == PCMIZPString2 },
		func(f *ParsedFrame) (*ZoneParameters, error) { return ParseZoneParameters(f.PayloadHex) },
	)
}

// DownloadZoneVariables requests PCMI_SEND_ZONE_VAR and streams a
// ZoneVariables record per zone.
func (c *Client) DownloadZoneVariables() *Iterator[*ZoneVariables] {
	return downloadSequence(c, "zone variables", buildSimpleFrame(PCMISendZoneVar),
		func(cmd CommandCode) bool { return cmd == PCMIZVString1 || cmd == PCMIZVString2 },
		func(f *ParsedFrame) (*ZoneVariables, error) { return ParseZoneVariables(f.PayloadHex) },
	)
}

// DownloadVersion requests PCMI_SEND_VERSION and returns the
// controller's firmware version and build date.
func (c *Client) DownloadVersion() (*VersionRecord, error) {
	if err := c.ensureConnected(); err != nil {
		return nil, err
	}
	c.state = StateDownloading
	defer func() { c.state = StateConnected }()

	if err := c.transport.Write(buildSimpleFrame(PCMISendVersion)); err != nil {
		return nil, err
	}

	parsed, err := c.readResponse(0)
	if err != nil {
		return nil, err
	}
	if parsed.Command != PCMISVString {
		return nil, newProtocolError("unexpected response to download_version: 0x%02X", byte(parsed.Command))
	}

	v, err := ParseVersionRecord(parsed.PayloadHex)
	if err != nil {
		return nil, err
	}
	c.log.Debugf("downloaded version: %s", v.VersionString)
	return v, nil
}

// DownloadHistory requests PCMI_SEND_HISTORY for zoneNumber (0 = all
// zones) and group, streaming one HistoryRecord per zone/group
// combination the controller holds.
func (c *Client) DownloadHistory(zoneNumber byte, group HistoryGroup) *Iterator[*HistoryRecord] {
	requestData := []byte{zoneNumber, byte(group)}
	return downloadSequence(c, "history records", buildFrame(PCMISendHistory, requestData),
		func(cmd CommandCode) bool { return cmd == PCMIHAString || cmd == PCMIHANonSwapString },
		func(f *ParsedFrame) (*HistoryRecord, error) {
			strategy := Swap
			if f.Command == PCMIHANonSwapString {
				strategy = NonSwap
			}
			return ParseHistoryRecord(f.PayloadHex, strategy)
		},
	)
}

// DownloadAlarms requests PCMI_SEND_ALARM for zoneNumber (0 = all
// zones), streaming one AlarmList per zone the controller holds.
func (c *Client) DownloadAlarms(zoneNumber byte) *Iterator[*AlarmList] {
	requestData := []byte{zoneNumber}
	return downloadSequence(c, "alarm lists", buildFrame(PCMISendAlarm, requestData),
		func(cmd CommandCode) bool { return cmd == PCMISAString || cmd == PCMISANonSwapString },
		func(f *ParsedFrame) (*AlarmList, error) {
			strategy := Swap
			if f.Command == PCMISANonSwapString {
				strategy = NonSwap
			}
			return ParseAlarmList(f.PayloadHex, strategy)
		},
	)
}

// DownloadDeviceParameters requests PCMI_SEND_DEVICE_PARM for
// zoneNumber (0 = all zones), streaming one decoded device parameter
// record per device. registry selects the decoder per device type;
// pass nil to use NewDefaultDeviceRegistry().
func (c *Client) DownloadDeviceParameters(zoneNumber byte, registry *DeviceParserRegistry) *Iterator[any] {
	if registry == nil {
		registry = NewDefaultDeviceRegistry()
	}
	requestData := []byte{zoneNumber}
	return downloadSequence(c, "device parameters", buildFrame(PCMISendDeviceParm, requestData),
		func(cmd CommandCode) bool { return cmd == PCMIDPString1 || cmd == PCMIDPString2 },
		func(f *ParsedFrame) (any, error) {
			// The 1-byte/2-byte RLI variants only change how the outer
			// frame's length is encoded; the record's own endianness
			// comes from its record_format byte, resolved inside
			// ParseDeviceParameters. Swap here is just the bootstrap
			// value readRecordHeader rebinds away from.
			return ParseDeviceParameters(f.PayloadHex, Swap, registry)
		},
	)
}

// DownloadDeviceVariables requests PCMI_SEND_DEVICE_VAR for zoneNumber
// (0 = all zones), analogous to DownloadDeviceParameters.
func (c *Client) DownloadDeviceVariables(zoneNumber byte, registry *DeviceParserRegistry) *Iterator[any] {
	if registry == nil {
		registry = NewDefaultDeviceRegistry()
	}
	requestData := []byte{zoneNumber}
	return downloadSequence(c, "device variables", buildFrame(PCMISendDeviceVar, requestData),
		func(cmd CommandCode) bool { return cmd == PCMIDVString1 || cmd == PCMIDVString2 },
		func(f *ParsedFrame) (any, error) {
			return ParseDeviceVariables(f.PayloadHex, Swap, registry)
		},
	)
}
