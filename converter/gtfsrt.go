package converter

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"

	"github.com/theoremus-urban-solutions/ttc-alerts/extract"
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

// GTFSRealtimeVersion is the header version of exported feeds.
const GTFSRealtimeVersion = "2.0"

// routeTypeSubway is the GTFS route_type of subway and metro lines.
const routeTypeSubway int32 = 1

// BuildAlertFeed exports records as a full-dataset GTFS-Realtime feed of
// service alerts, one entity per record in input order.
func BuildAlertFeed(records []record.Alert, opts ExportOptions) *gtfsrtpb.FeedMessage {
	opts = opts.withDefaults()
	entities := make([]*gtfsrtpb.FeedEntity, 0, len(records))
	ids := idSet{}
	for _, a := range records {
		id := ids.next(a)
		entities = append(entities, &gtfsrtpb.FeedEntity{
			Id:    ptr(id),
			Alert: buildAlert(a, id, opts),
		})
	}
	return &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: ptr(GTFSRealtimeVersion),
			Incrementality:      ptr(gtfsrtpb.FeedHeader_FULL_DATASET),
			Timestamp:           ptr(uint64(opts.Now.Unix())),
		},
		Entity: entities,
	}
}

func buildAlert(a record.Alert, id string, opts ExportOptions) *gtfsrtpb.Alert {
	alert := &gtfsrtpb.Alert{
		Cause:           ptr(alertCause(a)),
		Effect:          ptr(alertEffect(a)),
		HeaderText:      translated(opts.Language, summary(a)),
		DescriptionText: translated(opts.Language, description(a)),
		Url:             translated(opts.Language, infoURL(a, opts.BaseURL)),
		InformedEntity:  informedEntities(a, opts.Codespace),
	}
	if v, ok := resolveValidity(a, id, opts.Location, opts.Warnings); ok {
		period := &gtfsrtpb.TimeRange{Start: ptr(uint64(v.Start.Unix()))}
		if v.HasEnd() {
			period.End = ptr(uint64(v.End.Unix()))
		}
		alert.ActivePeriod = []*gtfsrtpb.TimeRange{period}
	}
	return alert
}

// informedEntities selects the line when it is known, otherwise the agency's
// subway network for subway records, otherwise the whole agency.
func informedEntities(a record.Alert, agencyID string) []*gtfsrtpb.EntitySelector {
	sel := &gtfsrtpb.EntitySelector{AgencyId: ptr(agencyID)}
	if id, ok := extract.LineRouteID(a.Line); ok {
		sel.RouteId = ptr(id)
	} else if a.ServiceType == record.ServiceSubway {
		sel.RouteType = ptr(routeTypeSubway)
	}
	return []*gtfsrtpb.EntitySelector{sel}
}

func translated(lang, text string) *gtfsrtpb.TranslatedString {
	if text == "" {
		return nil
	}
	return &gtfsrtpb.TranslatedString{
		Translation: []*gtfsrtpb.TranslatedString_Translation{{
			Text:     ptr(text),
			Language: ptr(lang),
		}},
	}
}

func ptr[T any](v T) *T {
	return &v
}
