package timezone

import "time"

// Location is KST. The platform schedules everything in Korean time and
// its date-stamped endpoints expect dates in that zone, regardless of
// where this process runs.
var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Seoul")
	if err != nil {
		panic(err)
	}
}

func Now() time.Time {
	return time.Now().In(Location)
}

// DateStamp formats t as the yyyyMMdd stamp the listing endpoints take.
func DateStamp(t time.Time) string {
	return t.In(Location).Format("20060102")
}
