package formatter

import (
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func sampleFeed() *gtfsrtpb.FeedMessage {
	return &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1753452000),
		},
		Entity: []*gtfsrtpb.FeedEntity{{
			Id: proto.String("abc"),
			Alert: &gtfsrtpb.Alert{
				HeaderText: &gtfsrtpb.TranslatedString{
					Translation: []*gtfsrtpb.TranslatedString_Translation{{
						Text:     proto.String("Line 1: Finch to Eglinton"),
						Language: proto.String("en"),
					}},
				},
			},
		}},
	}
}

func TestBuildProto(t *testing.T) {
	data, err := BuildProto(sampleFeed())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var decoded gtfsrtpb.FeedMessage
	require.NoError(t, proto.Unmarshal(data, &decoded))
	assert.Equal(t, "abc", decoded.GetEntity()[0].GetId())
}

func TestBuildProtoText(t *testing.T) {
	data, err := BuildProtoText(sampleFeed())
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `gtfs_realtime_version:`)
	assert.Contains(t, s, `"Line 1: Finch to Eglinton"`)
	assert.Contains(t, s, "\n")
}
