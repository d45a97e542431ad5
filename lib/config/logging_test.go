package config

import (
	"errors"
	"testing"
)

func TestLoggingValid(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input *Logging
		want  error
	}{
		{
			name:  "simple happy",
			input: (Logging{}).Default(),
		},
		{
			name: "json format",
			input: &Logging{
				Sink:   LogSinkStdio,
				Format: LogFormatJSON,
			},
		},
		{
			name: "default file config",
			input: &Logging{
				Sink:       LogSinkFile,
				Format:     LogFormatText,
				Parameters: (&LoggingFileConfig{}).Default(),
			},
		},
		{
			name: "invalid sink",
			input: &Logging{
				Sink:   "taco invalid",
				Format: LogFormatText,
			},
			want: ErrInvalidLoggingSink,
		},
		{
			name: "invalid format",
			input: &Logging{
				Sink:   LogSinkStdio,
				Format: "logfmt",
			},
			want: ErrInvalidLogFormat,
		},
		{
			name: "missing parameters",
			input: &Logging{
				Sink:   LogSinkFile,
				Format: LogFormatText,
			},
			want: ErrMissingLoggingFileConfig,
		},
		{
			name: "invalid parameters",
			input: &Logging{
				Sink:       LogSinkFile,
				Format:     LogFormatText,
				Parameters: &LoggingFileConfig{},
			},
			want: ErrInvalidLoggingFileConfig,
		},
		{
			name: "file sink with no filename",
			input: &Logging{
				Sink:   LogSinkFile,
				Format: LogFormatText,
				Parameters: &LoggingFileConfig{
					Filename:   "",
					MaxBackups: 3,
					MaxBytes:   104857600, // 100 Mi
					MaxAge:     7,         // 7 days
					Compress:   true,
				},
			},
			want: ErrMissingValue,
		},
		{
			name: "file sink with negative max backups",
			input: &Logging{
				Sink:   LogSinkFile,
				Format: LogFormatText,
				Parameters: &LoggingFileConfig{
					Filename:   "./var/requestsink.log",
					MaxBackups: -3,
					MaxBytes:   104857600, // 100 Mi
					MaxAge:     7,         // 7 days
					Compress:   true,
				},
			},
			want: ErrOutOfRange,
		},
		{
			name: "file sink with negative max bytes",
			input: &Logging{
				Sink:   LogSinkFile,
				Format: LogFormatText,
				Parameters: &LoggingFileConfig{
					Filename:   "./var/requestsink.log",
					MaxBackups: 3,
					MaxBytes:   -1,
					MaxAge:     7, // 7 days
				},
			},
			want: ErrOutOfRange,
		},
		{
			name: "file sink with negative max age",
			input: &Logging{
				Sink:   LogSinkFile,
				Format: LogFormatText,
				Parameters: &LoggingFileConfig{
					Filename:   "./var/requestsink.log",
					MaxBackups: 3,
					MaxBytes:   104857600, // 100 Mi
					MaxAge:     -7,        // 7 days
					Compress:   true,
				},
			},
			want: ErrOutOfRange,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Valid()

			if !errors.Is(err, tt.want) {
				t.Logf("wanted error: %v", tt.want)
				t.Logf("   got error: %v", err)
				t.Fatal("got wrong error")
			}
		})
	}
}

func TestLoggingFileConfigZero(t *testing.T) {
	if !(LoggingFileConfig{}).Zero() {
		t.Error("empty file config should be zero")
	}

	if (LoggingFileConfig{}).Default().Zero() {
		t.Error("default file config should not be zero")
	}
}
