package vlive

import (
	"fmt"
	"time"
)

// endpoint is one fully-built request: url, query, headers, the politeness
// delay to apply before issuing it, and the statuses that still count as a
// response worth normalizing (403 carries an error envelope for gated
// content rather than being a transport failure).
type endpoint struct {
	url     string
	params  map[string]string
	headers map[string]string
	wait    time.Duration
	accept  []int
}

const postFields = "attachments,author,authorId,availableActions,board{boardId,title,boardType," +
	"readAllowedLabel,payRequired,includedCountries,excludedCountries},boardId," +
	"body,channel{channelName,channelCode},channelCode,commentCount,contentType," +
	"createdAt,emotionCount,excludedCountries,includedCountries,isViewerBookmarked," +
	"isCommentEnabled,isHiddenFromStar,lastModifierMember,notice,officialVideo," +
	"originPost,plainBody,postId,postVersion,reservation,starReactions,targetMember," +
	"targetMemberId,thumbnail,title,url,smartEditorAsHtml,viewerEmotionId,writtenIn"

const commentFields = "root,parent,commentId,body,emotionCount,commentCount,viewerEmotionId," +
	"viewerAvailableActions,createdAt,writtenIn,sticker,author,isRestricted,lastModifierMember"

const scheduleFields = "scheduleId,title,description,alarm,location,postId,videoSeq,officialVideo," +
	"photos,author,timezoneId,type,startAt,commentCount,emotionCount,commentWritable," +
	"availableActions,writtenIn,url,viewerEmotionId,channel{channelCode,channelName}," +
	"post{url},timeUsing,lastModifierMember"

const groupedBoardsFields = "boardId,title,boardType,openType,allowedViewers,includedCountries," +
	"excludedCountries,useStarFilter,payRequired,expose,channelCode,lastUpdatedAt"

func (c ClientConfig) commonHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      c.UserAgent,
		"Accept-Language": c.AcceptLanguage,
	}
}

func (c ClientConfig) localeParams() map[string]string {
	return map[string]string{
		"appId":  c.AppID,
		"gcc":    c.GCC,
		"locale": c.Locale,
	}
}

func (c ClientConfig) refererPost(postID string) string {
	return fmt.Sprintf("%s/post/%s", c.BaseURL, postID)
}

func (c ClientConfig) refererVideo(videoSeq string) string {
	return fmt.Sprintf("%s/video/%s", c.BaseURL, videoSeq)
}

func mergeParams(maps ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

func (c ClientConfig) endpointPost(postID string) endpoint {
	headers := c.commonHeaders()
	headers["Referer"] = c.refererPost(postID)
	return endpoint{
		url: fmt.Sprintf("%s/globalv-web/vam-web/post/v1.0/post-%s", c.BaseURL, postID),
		params: mergeParams(c.localeParams(), map[string]string{
			"fields": postFields + ",playlist.limit(30)",
		}),
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200, 403},
	}
}

func (c ClientConfig) endpointAuth() endpoint {
	headers := c.commonHeaders()
	headers["Referer"] = fmt.Sprintf("%s/auth/email/login", c.BaseURL)
	return endpoint{
		url:     fmt.Sprintf("%s/auth/email/login", c.BaseURL),
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200},
	}
}

func (c ClientConfig) endpointOfficialVideoPost(videoSeq string) endpoint {
	headers := c.commonHeaders()
	headers["Referer"] = c.refererVideo(videoSeq)
	return endpoint{
		url: fmt.Sprintf("%s/globalv-web/vam-web/post/v1.0/officialVideoPost-%s", c.BaseURL, videoSeq),
		params: mergeParams(c.localeParams(), map[string]string{
			"fields": postFields,
		}),
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200, 403},
	}
}

func (c ClientConfig) endpointVodInkey(videoSeq string) endpoint {
	headers := c.commonHeaders()
	headers["Referer"] = c.refererVideo(videoSeq)
	return endpoint{
		url: fmt.Sprintf("%s/globalv-web/vam-web/video/v1.0/vod/%s/inkey", c.BaseURL, videoSeq),
		params: mergeParams(c.localeParams(), map[string]string{
			"platformType": "PC",
		}),
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200, 403},
	}
}

func (c ClientConfig) endpointFVideoInkey(fvideoID string) endpoint {
	headers := c.commonHeaders()
	headers["Referer"] = c.refererPost("")
	return endpoint{
		url:     fmt.Sprintf("%s/globalv-web/vam-web/fvideo/v1.0/fvideo-%s/inKey", c.BaseURL, fvideoID),
		params:  c.localeParams(),
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200},
	}
}

func (c ClientConfig) endpointLivePlayInfo(videoSeq, vpdid2 string) endpoint {
	params := mergeParams(c.localeParams(), map[string]string{
		"platformType": "PC",
	})
	if vpdid2 != "" {
		params["vpdid2"] = vpdid2
	}
	headers := c.commonHeaders()
	headers["Referer"] = c.refererVideo(videoSeq)
	return endpoint{
		url:     fmt.Sprintf("%s/globalv-web/vam-web/old/v3/live/%s/playInfo", c.BaseURL, videoSeq),
		params:  params,
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200, 403},
	}
}

func (c ClientConfig) endpointLiveStatus(videoSeq string) endpoint {
	headers := c.commonHeaders()
	headers["Referer"] = c.refererVideo(videoSeq)
	return endpoint{
		url:     fmt.Sprintf("%s/globalv-web/vam-web/old/v2/live/%s/status", c.BaseURL, videoSeq),
		params:  c.localeParams(),
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200},
	}
}

const vodPlayInfoControls = `{"visible":{"fullscreen":true,"logo":false,"playbackRate":false,` +
	`"scrap":false,"playCount":true,"commentCount":true,"title":true,"writer":true,` +
	`"expand":true,"subtitles":true,"thumbnails":true,"quality":true,"setting":true,` +
	`"script":false,"logoDimmed":true,"badge":true,"seekingTime":true,"muted":true,` +
	`"muteButton":false,"viewerNotice":false,"linkCount":false,"createTime":false,` +
	`"thumbnail":true},"clicked":{"expand":false,"subtitles":false}}`

func (c ClientConfig) endpointVodPlayInfo(vodID, inkey string) endpoint {
	headers := c.commonHeaders()
	headers["Referer"] = c.BaseURL + "/"
	return endpoint{
		url: fmt.Sprintf("%s/rmcnmv/rmcnmv/vod/play/v2.0/%s", c.MediaBaseURL, vodID),
		params: map[string]string{
			"key":     inkey,
			"videoId": vodID,
			"ver":     "2.0",
			"ctls":    vodPlayInfoControls,
			"devt":    "html5_pc",
			"doct":    "json",
			"cpt":     "vtt",
			"cpl":     c.Locale,
			"lc":      c.Locale,
			"cc":      c.GCC,
		},
		headers: headers,
		wait:    time.Millisecond * 300,
		accept:  []int{200, 403},
	}
}

// endpointComment covers the whole comment endpoint family: prefix is
// "post" or "comment", postfix selects the sub-listing ("comments",
// "starComments" or none for a single comment).
func (c ClientConfig) endpointComment(prefix, id, postfix, after string, extraFields ...string) endpoint {
	url := fmt.Sprintf("%s/globalv-web/vam-web/comment/v1.0/%s-%s", c.BaseURL, prefix, id)
	if postfix != "" {
		url += "/" + postfix
	}

	fields := commentFields
	for _, f := range extraFields {
		fields += "," + f
	}
	params := mergeParams(c.localeParams(), map[string]string{
		"fields":    fields,
		"startFrom": "first",
	})
	if after != "" {
		params["after"] = after
	}

	headers := c.commonHeaders()
	headers["Referer"] = c.refererPost(id)
	return endpoint{
		url:     url,
		params:  params,
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200, 403},
	}
}

func (c ClientConfig) endpointScheduleData(scheduleID string) endpoint {
	headers := c.commonHeaders()
	headers["Referer"] = fmt.Sprintf("%s/schedule/%s", c.BaseURL, scheduleID)
	return endpoint{
		url: fmt.Sprintf("%s/globalv-web/vam-web/schedule/v1.0/schedule-%s", c.BaseURL, scheduleID),
		params: mergeParams(c.localeParams(), map[string]string{
			"fields": scheduleFields,
		}),
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200, 403},
	}
}

func (c ClientConfig) endpointDecodeChannelCode(channelCode string) endpoint {
	headers := c.commonHeaders()
	headers["Referer"] = c.BaseURL + "/"
	return endpoint{
		url: fmt.Sprintf("%s/vproxy/channelplus/decodeChannelCode", c.APIBaseURL),
		params: map[string]string{
			"app_id":      c.AppID,
			"channelCode": channelCode,
			"_":           "1614426919000",
		},
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200},
	}
}

func (c ClientConfig) endpointChannelWebpage(channelCode string) endpoint {
	return endpoint{
		url:     fmt.Sprintf("%s/channel/%s", c.BaseURL, channelCode),
		headers: c.commonHeaders(),
		wait:    time.Millisecond * 500,
		accept:  []int{200},
	}
}

func (c ClientConfig) endpointGroupedBoards(channelCode string) endpoint {
	headers := c.commonHeaders()
	headers["Referer"] = fmt.Sprintf("%s/channel/%s", c.BaseURL, channelCode)
	return endpoint{
		url: fmt.Sprintf("%s/globalv-web/vam-web/board/v1.0/channel-%s/groupedBoards", c.BaseURL, channelCode),
		params: mergeParams(c.localeParams(), map[string]string{
			"fields": groupedBoardsFields,
			"filter": "",
		}),
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200},
	}
}

func (c ClientConfig) endpointBoardPosts(boardID, channelCode, after string, latest bool) endpoint {
	params := mergeParams(c.localeParams(), map[string]string{
		"fields": "postId,officialVideo",
		"limit":  "20",
	})
	if after != "" {
		params["after"] = after
	}
	if latest {
		params["sortType"] = "LATEST"
	} else {
		params["sortType"] = "OLDEST"
	}

	headers := c.commonHeaders()
	headers["Referer"] = fmt.Sprintf("%s/channel/%s/board/%s", c.BaseURL, channelCode, boardID)
	return endpoint{
		url:     fmt.Sprintf("%s/globalv-web/vam-web/post/v1.0/board-%s/posts", c.BaseURL, boardID),
		params:  params,
		headers: headers,
		wait:    time.Millisecond * 500,
		accept:  []int{200, 403},
	}
}

func (c ClientConfig) endpointUpcoming(date string) endpoint {
	params := map[string]string{}
	if date != "" {
		params["d"] = date
	}
	return endpoint{
		url:     fmt.Sprintf("%s/upcoming", c.BaseURL),
		params:  params,
		headers: c.commonHeaders(),
		accept:  []int{200},
	}
}
