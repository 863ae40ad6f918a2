package txt

import "golang.org/x/text/language"

var (
	ja = language.Japanese
	en = language.English
)

var dictionary = map[string]map[language.Tag]string{
	"site.title":   {ja: "AiRia", en: "AiRia"},
	"site.tagline": {ja: "AiRia オフィシャルサイト", en: "AiRia Official Website"},

	"nav.home":     {ja: "ホーム", en: "Home"},
	"nav.news":     {ja: "ニュース", en: "News"},
	"nav.live":     {ja: "ライブ", en: "Live"},
	"nav.artist":   {ja: "アーティスト", en: "Artist"},
	"nav.music":    {ja: "ミュージック", en: "Music"},
	"nav.calendar": {ja: "カレンダー", en: "Calendar"},
	"nav.contact":  {ja: "コンタクト", en: "Contact"},

	"menu.open":  {ja: "メニューを開く", en: "Open menu"},
	"menu.close": {ja: "メニューを閉じる", en: "Close menu"},

	"section.latestNews": {ja: "最新ニュース", en: "Latest news"},
	"section.nextLive":   {ja: "次回ライブ", en: "Next live"},
	"section.members":    {ja: "メンバー", en: "Members"},
	"section.events":     {ja: "イベント", en: "Events"},
	"section.social":     {ja: "SNS", en: "Social"},
	"section.upcoming":   {ja: "今後のライブ", en: "Upcoming lives"},
	"section.past":       {ja: "過去のライブ", en: "Past lives"},
	"section.songs":      {ja: "楽曲", en: "Songs"},
	"section.line":       {ja: "LINE公式アカウント", en: "LINE official account"},

	"text.loading":          {ja: "読み込み中...", en: "Loading..."},
	"text.loadFailed":       {ja: "データの読み込みに失敗しました。しばらく後でお試しください。", en: "Failed to load data. Please try again later."},
	"text.noNews":           {ja: "現在、ニュースはありません。", en: "There is no news at the moment."},
	"text.noNewsInCategory": {ja: "ニュース記事がありません。", en: "No articles in this category."},
	"text.noUpcoming":       {ja: "現在、予定されているライブはありません。", en: "No lives are scheduled at the moment."},
	"text.noPast":           {ja: "過去のライブ情報はありません。", en: "No past lives."},
	"text.noMembers":        {ja: "メンバー情報を読み込めませんでした。", en: "Could not load the members."},
	"text.noSongs":          {ja: "楽曲情報を読み込めませんでした。", en: "Could not load the songs."},
	"text.noSocial":         {ja: "SNSリンクを読み込めませんでした。", en: "Could not load the social links."},
	"text.noEvents":         {ja: "イベント情報を読み込めませんでした。", en: "Could not load the events."},
	"text.noEventsOnDay":    {ja: "この日はイベントがありません", en: "No events on this day"},
	"text.timeTBD":          {ja: "時間未定", en: "Time TBD"},
	"text.ticket":           {ja: "チケット情報", en: "Tickets"},
	"text.soldOut":          {ja: "SOLD OUT", en: "SOLD OUT"},
	"text.readMore":         {ja: "続きを読む", en: "Read more"},
	"text.buyTicket":        {ja: "チケット購入", en: "Buy tickets"},
	"text.ticketShort":      {ja: "チケット", en: "Tickets"},
	"text.details":          {ja: "詳細を見る", en: "Details"},
	"text.datetime":         {ja: "日時", en: "Date"},
	"text.venue":            {ja: "会場", en: "Venue"},

	"text.notFound":    {ja: "ページが見つかりません。", en: "Page not found."},
	"text.didYouMean":  {ja: "もしかして: %s", en: "Did you mean: %s"},
	"text.backHome":    {ja: "ホームに戻る", en: "Back to home"},
	"text.serverError": {ja: "エラーが発生しました。", en: "Something went wrong."},

	"share.title":    {ja: "この記事をシェア", en: "Share this article"},
	"share.twitter":  {ja: "Twitterでシェア", en: "Share on Twitter"},
	"share.facebook": {ja: "Facebookでシェア", en: "Share on Facebook"},
	"share.line":     {ja: "LINEでシェア", en: "Share on LINE"},

	"social.of": {ja: "%[1]sの%[2]s", en: "%[2]s of %[1]s"},

	"label.event.live":      {ja: "ライブ", en: "Live"},
	"label.event.street":    {ja: "路上ライブ", en: "Street live"},
	"label.event.streaming": {ja: "配信", en: "Streaming"},

	"label.news.all":     {ja: "すべて", en: "All"},
	"label.news.release": {ja: "リリース", en: "Release"},
	"label.news.live":    {ja: "ライブ", en: "Live"},
	"label.news.info":    {ja: "お知らせ", en: "Info"},

	"calendar.title":    {ja: "%[1]s年%[2]s", en: "%[2]s %[1]s"},
	"calendar.prev":     {ja: "前の月", en: "Previous month"},
	"calendar.next":     {ja: "次の月", en: "Next month"},
	"calendar.today":    {ja: "今月", en: "This month"},
	"calendar.dayTitle": {ja: "%sのイベント", en: "Events on %s"},
	"calendar.more":     {ja: "+%d", en: "+%d"},
	"calendar.upcoming": {ja: "今後のイベント", en: "Upcoming events"},

	"contact.addFriend": {ja: "友だち追加", en: "Add friend"},
	"contact.lineID":    {ja: "LINE ID: %s", en: "LINE ID: %s"},

	"player.close": {ja: "閉じる", en: "Close"},
	"player.play":  {ja: "再生", en: "Play"},
	"modal.close":  {ja: "閉じる", en: "Close"},

	"member.back": {ja: "アーティスト一覧へ戻る", en: "Back to artist"},
	"live.back":   {ja: "ライブ一覧へ戻る", en: "Back to lives"},
	"news.back":   {ja: "ニュース一覧へ戻る", en: "Back to news"},

	"footer.copyright": {ja: "© %s AiRia. All rights reserved.", en: "© %s AiRia. All rights reserved."},
}
