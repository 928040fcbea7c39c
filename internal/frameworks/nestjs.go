package frameworks

import (
	"fmt"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned nestjs stack versions.
const (
	nestVersion        = "^10.4.1"
	nestCLIVersion     = "^10.4.5"
	nestSwaggerVersion = "^7.4.0"
	typeormVersion     = "^0.3.20"
	reflectMetadata    = "^0.2.2"
)

// NestJS returns the blueprint for NestJS services. NestJS is always
// TypeScript.
func NestJS() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "nestjs",
		Aliases:     []string{"nestjs", "nest"},
		Description: "NestJS HTTP service",
		Runtime:     "node",
		Schema: scaffold.Schema{
			{Key: "database", Kind: scaffold.KindString, Default: "none", Enum: []string{"none", "postgres", "mongodb"}, Doc: "Database integration via TypeORM/Mongoose"},
			{Key: "swagger", Kind: scaffold.KindBool, Default: false, Doc: "Include OpenAPI document setup"},
			{Key: "docker", Kind: scaffold.KindBool, Default: false, Doc: "Include a Dockerfile"},
		},
		Features: []scaffold.Feature{
			{Name: "base", Files: nestBase},
			{Name: "database", When: whenNotString("database", "none"), Files: nestDatabase},
			{Name: "docker", When: whenBool("docker"), Files: nodeDockerfile},
		},
	}
}

func nestBase(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options

	deps := []dep{
		{"@nestjs/common", nestVersion},
		{"@nestjs/core", nestVersion},
		{"@nestjs/platform-express", nestVersion},
		{"reflect-metadata", reflectMetadata},
		{"rxjs", rxjsVersion},
	}
	switch o.String("database") {
	case "postgres":
		deps = append(deps, dep{"@nestjs/typeorm", "^10.0.2"}, dep{"pg", pgVersion}, dep{"typeorm", typeormVersion})
	case "mongodb":
		deps = append(deps, dep{"@nestjs/mongoose", "^10.0.10"}, dep{"mongoose", mongooseVersion})
	}
	if o.Bool("swagger") {
		deps = append(deps, dep{"@nestjs/swagger", nestSwaggerVersion})
	}

	devDeps := []dep{
		{"@nestjs/cli", nestCLIVersion},
		{"@types/node", nodeTypesVersion},
		{"typescript", typescriptVersion},
	}

	scripts := []dep{
		{"build", "nest build"},
		{"start", "nest start"},
		{"start:dev", "nest start --watch"},
	}

	mainBody := `import { NestFactory } from '@nestjs/core'
import { AppModule } from './app.module'
`
	if o.Bool("swagger") {
		mainBody += "import { DocumentBuilder, SwaggerModule } from '@nestjs/swagger'\n"
	}
	mainBody += `
async function bootstrap() {
  const app = await NestFactory.create(AppModule)
`
	if o.Bool("swagger") {
		mainBody += fmt.Sprintf(`  const config = new DocumentBuilder().setTitle('%s').setVersion('0.1.0').build()
  const document = SwaggerModule.createDocument(app, config)
  SwaggerModule.setup('docs', app, document)
`, ctx.Project)
	}
	mainBody += `  await app.listen(process.env.PORT ?? 3000)
}
bootstrap()
`

	moduleImports := "import { Module } from '@nestjs/common'\nimport { AppController } from './app.controller'\n"
	moduleDecorator := "@Module({\n  imports: [],\n  controllers: [AppController],\n})"
	switch o.String("database") {
	case "postgres":
		moduleImports += "import { TypeOrmModule } from '@nestjs/typeorm'\n"
		moduleDecorator = `@Module({
  imports: [
    TypeOrmModule.forRoot({
      type: 'postgres',
      url: process.env.DATABASE_URL,
      autoLoadEntities: true,
    }),
  ],
  controllers: [AppController],
})`
	case "mongodb":
		moduleImports += "import { MongooseModule } from '@nestjs/mongoose'\n"
		moduleDecorator = `@Module({
  imports: [MongooseModule.forRoot(process.env.MONGODB_URI!)],
  controllers: [AppController],
})`
	}

	return []scaffold.FileNode{
		file("package.json", packageJSON(ctx.Project, scripts, deps, devDeps)),
		file("nest-cli.json", `{
  "$schema": "https://json.schemastore.org/nest-cli",
  "collection": "@nestjs/schematics",
  "sourceRoot": "src"
}
`),
		file("tsconfig.json", `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "CommonJS",
    "moduleResolution": "node",
    "outDir": "dist",
    "strict": true,
    "emitDecoratorMetadata": true,
    "experimentalDecorators": true,
    "esModuleInterop": true,
    "skipLibCheck": true
  },
  "include": ["src"]
}
`),
		file("src/main.ts", mainBody),
		file("src/app.module.ts", moduleImports+"\n"+moduleDecorator+"\nexport class AppModule {}\n"),
		file("src/app.controller.ts", fmt.Sprintf(`import { Controller, Get } from '@nestjs/common'

@Controller()
export class AppController {
  @Get('health')
  health() {
    return { status: 'ok', service: '%s' }
  }
}
`, ctx.Project)),
		file(".env.example", "PORT=3000\n"+dbEnvExample(o.String("database"))),
		file(".gitignore", nodeGitignore),
		file("README.md", readme(ctx.Project, "NestJS", "npm install\nnpm run start:dev")),
	}
}

func nestDatabase(ctx scaffold.Context) []scaffold.FileNode {
	// Connection config lives in app.module.ts; this contributes the
	// compose file for a local database.
	var service string
	switch ctx.Options.String("database") {
	case "postgres":
		service = `  db:
    image: postgres:16-alpine
    environment:
      POSTGRES_PASSWORD: postgres
    ports:
      - "5432:5432"
`
	case "mongodb":
		service = `  db:
    image: mongo:7
    ports:
      - "27017:27017"
`
	}

	return []scaffold.FileNode{
		file("docker-compose.yml", "services:\n"+service),
	}
}
