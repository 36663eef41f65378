package templates

// IframeTemplate is the theme name of the built-in trail iframe markup.
const IframeTemplate = "trails_iframe"

const iframeSource = `<div class="trails-iframe" data-entity-id="{{ entity_id }}">
  <iframe src="{{ iframe_url }}" title="{{ t(locale, "trails.iframe.title", entity_id) }}" width="{{ width }}" height="{{ height }}" loading="lazy" frameborder="0"></iframe>
  <p class="trails-iframe__link"><a href="{{ iframe_url }}">{{ iframe_url }}</a></p>
</div>`

func builtinTemplates() map[string]string {
	return map[string]string{
		IframeTemplate: iframeSource,
	}
}
