// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"text/template"
)

// ideasPromptTmpl asks the model for a numbered list of content ideas
// grounded in the brand context.
var ideasPromptTmpl = template.Must(template.New("ideas").Parse(`You are a content marketing expert. Based on the following brand information, come up with {{.Count}} creative content ideas (posts, articles, videos, and so on).

Brand information:
{{.Brand}}

Requirements:
- Ideas must be relevant to the target audience
- Respect the brand's tone of voice and values
- Ideas must be practical and achievable
- Vary the formats (text, video, infographic, and so on)

Return a list of {{.Count}} ideas. Put each idea on its own line, starting with a number (1., 2., 3. and so on).
Be specific and creative.`))

// postPromptTmpl asks the model for one publish-ready post shaped by the
// platform and length guidance.
var postPromptTmpl = template.Must(template.New("post").Parse(`You are a professional copywriter. Write a post for {{.Platform}} on the topic "{{.Topic}}".

Brand information:
{{.Brand}}

Post requirements:
- Length: {{.LengthGuidance}}
- Platform: {{.Platform}}
- {{.PlatformGuidance}}
- Keep the brand's tone of voice
- Speak to the target audience
- Include a call to action (CTA)
- The post must be engaging and useful

Write a finished post that is ready to publish as is.`))

// planPromptTmpl asks the model for a structured day-by-day content plan.
var planPromptTmpl = template.Must(template.New("plan").Parse(`You are a content planning expert. Create a detailed content plan for one {{.Period}} ({{.Count}} posts) for the brand.

Brand information:
{{.Brand}}

Requirements:
- Plan {{.Count}} days of content
- For each day give: the date or weekday, the post topic, the format (text/video/infographic), and a short description
- Topics must be varied and relevant
- Respect the target audience and the brand's values
- Spread the content evenly across the days

Return a structured plan in this format:
Day 1 (Monday):
Topic: [topic]
Format: [format]
Description: [short description]

And so on for every day.`))

// lengthGuidance maps a requested post length to its prompt wording.
var lengthGuidance = map[string]string{
	"short":  "a short post (2-3 sentences, up to 150 words)",
	"medium": "a medium post (4-6 sentences, 150-300 words)",
	"long":   "a long post (7+ sentences, 300+ words)",
}

// platformGuidance maps a platform to its style notes. Unknown platforms
// get no notes rather than failing.
var platformGuidance = map[string]string{
	"instagram": "Use emoji and put hashtags at the end, with short paragraphs. The style should be visual and engaging.",
	"facebook":  "A more expansive format; lists work well. Suits more detailed content.",
	"telegram":  "Informal style, emoji welcome. Short paragraphs work well.",
	"blog":      "Long-form, structured text with subheadings and lists. A more formal style.",
}

func lengthFor(length string) string {
	if g, ok := lengthGuidance[length]; ok {
		return g
	}
	return lengthGuidance["medium"]
}

// periodLabel names the planning horizon. Anything that is not a week
// plans a month.
func periodLabel(period string) string {
	if period == "week" {
		return "week"
	}
	return "month"
}

func renderIdeasPrompt(brandContext string, count int) (string, error) {
	var buf bytes.Buffer
	err := ideasPromptTmpl.Execute(&buf, struct {
		Brand string
		Count int
	}{Brand: brandContext, Count: count})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderPostPrompt(brandContext, topic, platform, length string) (string, error) {
	var buf bytes.Buffer
	err := postPromptTmpl.Execute(&buf, struct {
		Brand            string
		Topic            string
		Platform         string
		LengthGuidance   string
		PlatformGuidance string
	}{
		Brand:            brandContext,
		Topic:            topic,
		Platform:         platform,
		LengthGuidance:   lengthFor(length),
		PlatformGuidance: platformGuidance[platform],
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderPlanPrompt(brandContext, period string, count int) (string, error) {
	var buf bytes.Buffer
	err := planPromptTmpl.Execute(&buf, struct {
		Brand  string
		Period string
		Count  int
	}{Brand: brandContext, Period: periodLabel(period), Count: count})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
