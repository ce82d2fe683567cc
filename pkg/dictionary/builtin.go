package dictionary

// Builtin returns the fallback label set used when no -df dictionary
// file is supplied and none exists at the default path.
func Builtin() []string {
	return append([]string{}, builtinLabels...)
}

var builtinLabels = []string{
	// Common subdomains
	"www", "mail", "ftp", "webmail", "smtp", "pop", "ns1", "webdisk", "ns2",
	"cpanel", "whm", "autodiscover", "autoconfig", "m", "imap", "test", "ns", "blog",
	"pop3", "dev", "www2", "admin", "forum", "news", "vpn", "ns3", "mail2", "new",
	"mysql", "old", "lists", "support", "mobile", "mx", "static", "docs", "beta", "shop",
	"sql", "secure", "demo", "cp", "calendar", "wiki", "web", "media", "email", "images",
	"img", "www1", "intranet", "portal", "video", "sip", "dns2", "api", "cdn", "stats",
	"dns1", "ns4", "www3", "dns", "search", "staging", "server", "mx1", "chat", "wap",
	"my", "svn", "mail1", "sites", "proxy", "ads", "host", "crm", "cms", "backup",
	"mx2", "info", "apps", "download", "remote", "db", "forums", "store",
	"relay", "files", "newsletter", "app", "live", "owa", "en", "start", "sms", "office",
	"exchange", "mail3", "help", "blogs", "helpdesk", "web1", "home", "library",
	"ftp2", "ntp", "monitor", "login", "service", "www4", "it",
	"gateway", "gw", "stat", "stage", "ldap", "tv", "ssl", "web2", "ns5", "upload",
	"smtp2", "online", "ad", "survey", "data", "radio", "extranet", "test2",
	"dns3", "jobs", "services", "panel", "hosting", "cloud", "de",
	"bbs", "cs", "mrtg", "review", "lab", "analytics", "sandbox",
	"www5", "www6", "mail4", "secure2", "tv2",
	"ping", "direct", "survey2", "trace", "www7", "ftp1", "files2", "mobile2",
	"social",
	"backup2", "oracle", "share", "v2", "photos",
	"node", "pma", "sub", "s3", "secure3", "training",
	"labs", "linux", "fax", "php", "tracking", "thumbs",
	"campus", "reg", "digital", "demo2", "web3", "uat", "v",
	"union", "noc", "netmail", "beta2", "archive", "photo", "video2",
	"web-dev", "v1", "mail5", "ops", "lab2", "dev2", "img2", "vps",

	// Technical subdomains
	"assets", "content", "js", "css", "fonts", "uploads", "downloads",
	"resources", "cache", "tmp", "temp",

	// Environment-based
	"prod", "production", "development", "testing", "qa", "preview",
	"alpha", "rc", "pre", "preprod",

	// Services
	"auth", "sso", "oauth", "signin", "signup", "register", "account", "profile",
	"dashboard", "control", "manage", "console", "plesk", "webmin", "phpmyadmin",
	"adminer",

	// Applications
	"application", "microservice", "ms", "ws", "webservice", "rest", "graphql",
	"grpc", "soap",

	// Infrastructure
	"lb", "loadbalancer", "reverse-proxy", "firewall", "router",
	"switch", "hub", "bridge", "tunnel", "bastion", "jump",

	// Monitoring & Logging
	"monitoring", "metrics", "logs", "logging", "kibana", "grafana",
	"prometheus", "nagios", "zabbix", "cacti", "munin",

	// Databases
	"database", "postgres", "postgresql", "mongo", "mongodb", "redis",
	"elastic", "elasticsearch", "solr", "cassandra", "neo4j", "influx", "influxdb",

	// CI/CD & DevOps
	"ci", "cd", "jenkins", "gitlab", "github", "bitbucket", "bamboo", "teamcity",
	"travis", "circleci", "drone", "concourse", "spinnaker", "argo", "tekton",

	// Cloud & Containers
	"k8s", "kubernetes", "docker", "registry", "harbor", "quay", "gcr", "ecr",
	"aks", "eks", "gke", "openshift", "rancher", "nomad", "consul",

	// Security
	"vault", "secrets", "keystore", "cert", "certificate", "ca", "pki", "acme",
	"security", "sec", "scanner", "scan", "audit",

	// Backup & Storage
	"backups", "storage", "blob", "object",
	"nfs", "smb", "sftp", "rsync", "sync",

	// Communication
	"outlook", "teams", "discord", "irc", "xmpp", "voip", "pbx",

	// Content Management
	"wordpress", "wp", "drupal", "joomla", "ghost", "hugo", "jekyll",
	"contentful", "strapi", "directus", "craft",

	// E-commerce
	"ecommerce", "cart", "checkout", "payment", "pay", "billing",
	"invoice", "magento", "shopify", "woocommerce", "prestashop", "opencart",

	// Single letters and numbers (for short subdomains)
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "n", "o", "p",
	"q", "r", "s", "t", "u", "w", "x", "y", "z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}
