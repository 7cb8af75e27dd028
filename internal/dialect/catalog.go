package dialect

// All returns the full catalog of supported dialects. The catalog is
// assembled fresh on every call and callers must treat it as read-only;
// there is no mutable global behind it.
//
// Vocabularies follow the HTML 4.01, XHTML 1.0 and HTML5 specifications.
// Each generation extends the previous one additively; nothing is ever
// removed from a base dialect.
func All() []Dialect {
	html4Strict := newHTML4Strict()
	html4Transitional := newHTML4Transitional(html4Strict)
	html4FrameSet := newHTML4FrameSet(html4Transitional)
	html5 := newHTML5()

	return []Dialect{
		html4Strict,
		html4Transitional,
		html4FrameSet,

		// The XHTML 1.0 variants share the HTML 4.01 vocabularies and
		// differ only in doctype and closing style.
		Extend(html4Strict, []string{"xhtml1", "strict"}, []string{
			`<?xml version="1.0" encoding="UTF-8" ?>`,
			`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN"`,
			`    "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`,
		}, true, Additions{}),
		Extend(html4Transitional, []string{"xhtml1", "transitional"}, []string{
			`<?xml version="1.0" encoding="UTF-8" ?>`,
			`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN"`,
			`    "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`,
		}, true, Additions{}),
		Extend(html4FrameSet, []string{"xhtml1", "frameset"}, []string{
			`<?xml version="1.0" encoding="UTF-8" ?>`,
			`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN"`,
			`    "http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd">`,
		}, true, Additions{}),

		html5,
		Extend(html5, []string{"xhtml5"}, []string{
			`<?xml version="1.0" encoding="UTF-8" ?>`,
			`<!DOCTYPE html>`,
		}, true, Additions{}),
	}
}

func newHTML4Strict() Dialect {
	return Extend(Dialect{}, []string{"html4", "strict"}, []string{
		`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN"`,
		`    "http://www.w3.org/TR/html4/strict.dtd">`,
	}, false, Additions{
		Containers: []string{
			"a", "abbr", "acronym", "address", "b", "bdo", "big",
			"blockquote", "body", "button", "caption", "cite", "code",
			"colgroup", "dd", "del", "dfn", "div", "dl", "dt", "em",
			"fieldset", "form", "h1", "h2", "h3", "h4", "h5", "h6",
			"head", "html", "i", "ins", "kbd", "label", "legend", "li",
			"map", "noscript", "object", "ol", "optgroup", "option",
			"p", "pre", "q", "samp", "script", "select", "small",
			"span", "strong", "style", "sub", "sup", "table", "tbody",
			"td", "textarea", "tfoot", "th", "thead", "title", "tr",
			"tt", "ul", "var",
		},
		Voids: []string{
			"area", "br", "col", "hr", "img", "input", "link", "meta",
			"param",
		},
		Attributes: []string{
			"abbr", "accept", "accept-charset", "accesskey", "action",
			"align", "alt", "archive", "axis", "border", "cellpadding",
			"cellspacing", "char", "charoff", "charset", "checked",
			"cite", "class", "classid", "codebase", "codetype", "cols",
			"colspan", "content", "coords", "data", "datetime",
			"declare", "defer", "dir", "disabled", "enctype", "for",
			"frame", "headers", "href", "hreflang", "http-equiv", "id",
			"label", "lang", "maxlength", "media", "method",
			"multiple", "name", "nohref", "onabort", "onblur",
			"onchange", "onclick", "ondblclick", "onfocus",
			"onkeydown", "onkeypress", "onkeyup", "onload",
			"onmousedown", "onmousemove", "onmouseout", "onmouseover",
			"onmouseup", "onreset", "onselect", "onsubmit", "onunload",
			"profile", "readonly", "rel", "rev", "rows", "rowspan",
			"rules", "scheme", "scope", "selected", "shape", "size",
			"span", "src", "standby", "style", "summary", "tabindex",
			"title", "type", "usemap", "valign", "value", "valuetype",
			"width",
		},
	})
}

func newHTML4Transitional(strict Dialect) Dialect {
	return Extend(strict, []string{"html4", "transitional"}, []string{
		`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN"`,
		`    "http://www.w3.org/TR/html4/loose.dtd">`,
	}, false, Additions{
		Containers: []string{
			"applet", "center", "dir", "font", "iframe", "menu",
			"noframes", "s", "strike", "u",
		},
		Voids: []string{
			"basefont", "isindex",
		},
		Attributes: []string{
			"alink", "background", "bgcolor", "clear", "code", "color",
			"compact", "face", "frameborder", "height", "hspace",
			"language", "link", "longdesc", "marginheight",
			"marginwidth", "noshade", "nowrap", "object", "prompt",
			"scrolling", "start", "target", "text", "vlink", "vspace",
		},
	})
}

func newHTML4FrameSet(transitional Dialect) Dialect {
	return Extend(transitional, []string{"html4", "frameset"}, []string{
		`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN"`,
		`    "http://www.w3.org/TR/html4/frameset.dtd">`,
	}, false, Additions{
		Containers: []string{"frameset"},
		Voids:      []string{"frame"},
		Attributes: []string{"noresize"},
	})
}

func newHTML5() Dialect {
	return Extend(Dialect{}, []string{"html5"}, []string{
		`<!DOCTYPE HTML>`,
	}, false, Additions{
		Containers: []string{
			"a", "abbr", "address", "article", "aside", "audio", "b",
			"bdi", "bdo", "blockquote", "body", "button", "canvas",
			"caption", "cite", "code", "colgroup", "datalist", "dd",
			"del", "details", "dfn", "dialog", "div", "dl", "dt", "em",
			"fieldset", "figcaption", "figure", "footer", "form", "h1",
			"h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup",
			"html", "i", "iframe", "ins", "kbd", "label", "legend",
			"li", "main", "map", "mark", "menu", "meter", "nav",
			"noscript", "object", "ol", "optgroup", "option", "output",
			"p", "picture", "pre", "progress", "q", "rp", "rt", "ruby",
			"s", "samp", "script", "section", "select", "slot",
			"small", "span", "strong", "style", "sub", "summary",
			"sup", "table", "tbody", "td", "template", "textarea",
			"tfoot", "th", "thead", "time", "title", "tr", "u", "ul",
			"var", "video",
		},
		Voids: []string{
			"area", "base", "br", "col", "embed", "hr", "img", "input",
			"link", "meta", "param", "source", "track", "wbr",
		},
		Attributes: []string{
			"accept", "accept-charset", "accesskey", "action", "alt",
			"async", "autocomplete", "autofocus", "autoplay",
			"charset", "checked", "cite", "class", "cols", "colspan",
			"content", "contenteditable", "controls", "coords", "data",
			"datetime", "defer", "dir", "disabled", "download",
			"draggable", "enctype", "for", "form", "formaction",
			"formenctype", "formmethod", "formnovalidate",
			"formtarget", "headers", "height", "hidden", "high",
			"href", "hreflang", "http-equiv", "id", "inputmode",
			"integrity", "ismap", "kind", "label", "lang", "list",
			"loading", "loop", "low", "max", "maxlength", "media",
			"method", "min", "minlength", "multiple", "muted", "name",
			"novalidate", "onabort", "onblur", "oncanplay",
			"oncanplaythrough", "onchange", "onclick",
			"oncontextmenu", "ondblclick", "ondrag", "ondragend",
			"ondragenter", "ondragleave", "ondragover", "ondragstart",
			"ondrop", "ondurationchange", "onemptied", "onended",
			"onerror", "onfocus", "oninput", "oninvalid", "onkeydown",
			"onkeypress", "onkeyup", "onload", "onloadeddata",
			"onloadedmetadata", "onloadstart", "onmousedown",
			"onmousemove", "onmouseout", "onmouseover", "onmouseup",
			"onmousewheel", "onoffline", "ononline", "onpagehide",
			"onpageshow", "onpause", "onplay", "onplaying",
			"onprogress", "onratechange", "onreset", "onresize",
			"onscroll", "onseeked", "onseeking", "onselect",
			"onstalled", "onstorage", "onsubmit", "onsuspend",
			"ontimeupdate", "onvolumechange", "onwaiting", "open",
			"optimum", "pattern", "ping", "placeholder", "poster",
			"preload", "readonly", "referrerpolicy", "rel", "required",
			"reversed", "rows", "rowspan", "sandbox", "scope",
			"selected", "shape", "size", "sizes", "slot", "span",
			"spellcheck", "src", "srcdoc", "srclang", "srcset",
			"start", "step", "style", "tabindex", "target", "title",
			"translate", "type", "usemap", "value", "width", "wrap",
			"xmlns",
		},
	})
}
